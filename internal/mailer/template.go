package mailer

import (
	"html/template"
	"strings"
)

// newsletterTemplate wraps the admin-supplied subject and body in the site
// branding. The message block uses white-space: pre-line so caller-supplied
// line breaks survive HTML rendering.
var newsletterTemplate = template.Must(template.New("newsletter").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Subject}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 650px;
            margin: 0 auto;
            padding: 20px;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
        }
        .container { background: white; border-radius: 16px; overflow: hidden; }
        .header {
            background: linear-gradient(135deg, #1a1a2e 0%, #16213e 50%, #0f3460 100%);
            color: white;
            padding: 50px 40px;
            text-align: center;
        }
        .logo-text {
            font-size: 36px;
            font-weight: 900;
            margin-bottom: 8px;
            color: #00d4ff;
        }
        .tagline { font-size: 18px; opacity: 0.9; font-weight: 500; }
        .content { padding: 50px 40px; background: #f8fafc; }
        .subject-line {
            font-size: 28px;
            font-weight: 700;
            color: #1a202c;
            margin-bottom: 30px;
            text-align: center;
            padding: 20px;
            border-left: 5px solid #38b2ac;
            background: #e6fffa;
            border-radius: 12px;
        }
        .message {
            font-size: 18px;
            line-height: 1.8;
            white-space: pre-line;
            color: #2d3748;
            background: white;
            padding: 30px;
            border-radius: 12px;
            border: 1px solid #e2e8f0;
        }
        .cta { text-align: center; margin: 50px 0 0; }
        .cta-button {
            display: inline-block;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            text-decoration: none;
            padding: 18px 40px;
            border-radius: 50px;
            font-weight: 700;
            font-size: 18px;
            text-transform: uppercase;
        }
        .footer {
            background: #1a202c;
            color: #e2e8f0;
            padding: 40px;
            text-align: center;
            font-size: 14px;
        }
        .footer strong { font-size: 16px; color: #00d4ff; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo-text">CyberPiT</div>
            <div class="tagline">Elite Cybersecurity Research &amp; Innovation</div>
        </div>
        <div class="content">
            <div class="subject-line">{{.Subject}}</div>
            <div class="message">{{.Body}}</div>
            <div class="cta">
                <a href="https://cyberpit.live" class="cta-button">Explore CyberPiT</a>
            </div>
        </div>
        <div class="footer">
            <strong>CyberPiT Team</strong><br>
            Elite cybersecurity researchers, ethical hackers, and cyber defenders.
            <br><br>
            <small style="opacity: 0.7;">
                You received this email because you subscribed to CyberPiT updates.<br>
                &copy; 2025 CyberPiT. All rights reserved.
            </small>
        </div>
    </div>
</body>
</html>
`))

// renderNewsletter renders the message into the branded HTML document.
// It is called exactly once per dispatch; every recipient receives the
// same rendered document.
func renderNewsletter(msg Message) (string, error) {
	var buf strings.Builder
	if err := newsletterTemplate.Execute(&buf, msg); err != nil {
		return "", err
	}
	return buf.String(), nil
}
