// Package qrcode builds the verification QR codes printed on staff badges.
package qrcode

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	goqr "github.com/skip2/go-qrcode"
)

const defaultSize = 400

// StaffURL is the public verification page for an employee.
func StaffURL(scheme, host, employeeID string) string {
	return fmt.Sprintf("%s://%s/staff/%s", scheme, host, url.PathEscape(employeeID))
}

// DataURL encodes content as a PNG QR code and returns it as a data: URL.
func DataURL(content string, size int) (string, error) {
	if size <= 0 {
		size = defaultSize
	}

	png, err := goqr.Encode(content, goqr.Medium, size)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("data:image/png;base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(png))
	return b.String(), nil
}
