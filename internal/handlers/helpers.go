package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickfixx-site/internal/httperr"
	"github.com/BruksfildServices01/quickfixx-site/internal/infra/repository"
)

// activeOnly reads the ?active=true flag used by public listings.
func activeOnly(c *gin.Context) bool {
	return strings.EqualFold(strings.TrimSpace(c.Query("active")), "true")
}

// writeReadError maps a failed lookup to 404 or 500.
func writeReadError(c *gin.Context, err error, notFoundCode, notFoundMsg string) {
	if errors.Is(err, repository.ErrNotFound) {
		httperr.NotFound(c, notFoundCode, notFoundMsg)
		return
	}
	_ = c.Error(err)
	httperr.Internal(c, "internal_error", err.Error())
}

// writeWriteError maps a failed mutation. Business rule violations and
// storage faults (unique keys, constraints) are reported as 400 with the
// underlying message.
func writeWriteError(c *gin.Context, err error, failedCode, notFoundCode, notFoundMsg string) {
	if errors.Is(err, repository.ErrNotFound) {
		httperr.NotFound(c, notFoundCode, notFoundMsg)
		return
	}
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.BadRequest(c, be.Code, be.Error())
		return
	}
	_ = c.Error(err)
	httperr.Write(c, http.StatusBadRequest, failedCode, err.Error())
}

func trimmed(s string) string { return strings.TrimSpace(s) }

func trimList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
