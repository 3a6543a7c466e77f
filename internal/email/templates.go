package email

import (
	"bytes"
	"html/template"
)

// passwordResetHTML mirrors the reset notification sent to users. The link
// is valid for 20 minutes and single-use.
const passwordResetHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Reset Your Password</title>
</head>
<body>
<p>Hi {{.Name}},</p>
<p>We received a request to reset the password for your account.</p>
<p>Click the link below to set a new password:</p>
<p><a href="{{.ResetLink}}">{{.ResetLink}}</a></p>
<p>This link is valid for 20 minutes and can be used only once. If you didn't request this, you can safely ignore this email.</p>
<br>
<p>Thanks,</p>
<p>The {{.AppName}} Team</p>
</body>
</html>`

type passwordResetData struct {
	Name      string
	ResetLink string
	AppName   string
}

var passwordResetTmpl = template.Must(template.New("password_reset").Parse(passwordResetHTML))

func renderPasswordReset(data passwordResetData) (string, error) {
	var buf bytes.Buffer
	if err := passwordResetTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
