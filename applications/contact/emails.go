package contact

import (
	"fmt"
	"strings"
)

// contactEmailHTML formats the owner notification for one contact message.
func contactEmailHTML(p Params) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		  <h2 style="color: #000;">New Contact Form Submission</h2>
		  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
			<p><strong>Message:</strong></p>
			<p style="background: white; padding: 15px; border-radius: 5px; border-left: 3px solid #000;">%s</p>
		  </div>
		</div>`,
		p.Name,
		p.Email, p.Email,
		strings.ReplaceAll(p.Message, "\n", "<br>"),
	)
}
