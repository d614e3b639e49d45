package render

import (
	"encoding/base64"
	"fmt"
	"os"
)

// LogoHeader returns an inline HTML image tag for the logo at path, encoded
// as a base64 data URI so the converter needs no asset access. Returns ""
// when no logo file exists.
func LogoHeader(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf(`<img src="data:image/jpeg;base64,%s" style="max-width: 180px; max-height: 80px; margin-bottom: 20px;" />`+"\n\n", encoded)
}
