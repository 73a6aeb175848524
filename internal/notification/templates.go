package notification

import (
	"bytes"
	"html/template"
)

// Renderer produces the HTML bodies for back-office email. Values are
// interpolated as plain text; html/template escaping applies.
type Renderer struct {
	// AppBaseURL is used to build action links into the admin area.
	AppBaseURL string
}

func NewRenderer(appBaseURL string) *Renderer {
	return &Renderer{AppBaseURL: appBaseURL}
}

const baseLayout = `
<!DOCTYPE html>
<html>
<head>
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
    <style>
        body { background-color: #f6f9fc; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; font-size: 16px; line-height: 1.5; margin: 0; padding: 0; }
        .container { display: block; margin: 0 auto !important; max-width: 580px; padding: 10px; width: 580px; }
        .main { background: #ffffff; border-radius: 8px; width: 100%; border: 1px solid #e1e9ee; }
        .wrapper { box-sizing: border-box; padding: 24px; }
        .footer { clear: both; margin-top: 10px; text-align: center; width: 100%; color: #8898aa; font-size: 12px; }
        h1 { font-size: 22px; font-weight: 700; margin: 0 0 20px 0; color: #2d3a4a; }
        p { margin: 0 0 16px 0; color: #525f7f; }
        .btn a { background-color: #3d7a68; border-radius: 4px; color: #ffffff; display: inline-block; font-size: 16px; font-weight: bold; margin: 0 0 24px 0; padding: 12px 25px; text-decoration: none; }
        .quote { background: #f6f9fc; border-left: 3px solid #3d7a68; border-radius: 4px; color: #2d3a4a; margin: 16px 0; padding: 12px 16px; white-space: pre-wrap; }
    </style>
</head>
<body>
    <div class="container">
        <div class="main">
            <div class="wrapper">
                {{.Content}}
            </div>
        </div>
        <div class="footer">
            <span>Veridian Virtual Assistants</span>
        </div>
    </div>
</body>
</html>
`

const notificationContent = `
    <h1>{{.Title}}</h1>
    <p>{{.Message}}</p>
    {{if .ActionURL}}<div class="btn"><a href="{{.ActionURL}}" target="_blank">Open Admin Dashboard</a></div>{{end}}
    <p>You are receiving this because you are registered as back-office staff.</p>
`

const replyContent = `
    <p>Hi {{.RecipientName}},</p>
    <div class="quote">{{.Message}}</div>
    <p>Best regards,<br>{{.AdminName}}<br>{{.AdminEmail}}</p>
    <p>Veridian Virtual Assistants</p>
`

// RenderNotification renders the admin-alert email body for a
// notification, with a link back into the admin area.
func (r *Renderer) RenderNotification(title, message string) (string, error) {
	return r.render(notificationContent, map[string]any{
		"Title":     title,
		"Message":   message,
		"ActionURL": r.AppBaseURL + "/admin/dashboard",
	})
}

// RenderReply renders the free-form admin reply sent to an inquiry or
// testimonial submitter.
func (r *Renderer) RenderReply(adminName, adminEmail, recipientName, message string) (string, error) {
	return r.render(replyContent, map[string]any{
		"AdminName":     adminName,
		"AdminEmail":    adminEmail,
		"RecipientName": recipientName,
		"Message":       message,
	})
}

func (r *Renderer) render(contentTmpl string, data map[string]any) (string, error) {
	tContent, err := template.New("content").Parse(contentTmpl)
	if err != nil {
		return "", err
	}
	var contentBuf bytes.Buffer
	if err := tContent.Execute(&contentBuf, data); err != nil {
		return "", err
	}

	// The rendered content block is trusted; everything inside it was
	// already escaped by the content template.
	tLayout, err := template.New("layout").Parse(baseLayout)
	if err != nil {
		return "", err
	}
	var layoutBuf bytes.Buffer
	if err := tLayout.Execute(&layoutBuf, map[string]any{
		"Content": template.HTML(contentBuf.String()),
	}); err != nil {
		return "", err
	}

	return layoutBuf.String(), nil
}
