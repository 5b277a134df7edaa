package booking

import "fmt"

func orFallback(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// bookingEmailHTML is the owner-facing summary mail: every submitted field,
// with explicit fallbacks for the optional ones, and a link to the admin
// dashboard.
func bookingEmailHTML(bk *Booking, appURL string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		  <h2 style="color: #000;">New Booking Request</h2>
		  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
			<p><strong>Phone:</strong> <a href="tel:%s">%s</a></p>
			<p><strong>Service:</strong> %s</p>
			<p><strong>Event Date:</strong> %s</p>
			<p><strong>Event Time:</strong> %s</p>
			<p><strong>Message:</strong> %s</p>
		  </div>
		  <p style="color: #666; font-size: 12px;">View all bookings at: <a href="%s/admin">Admin Dashboard</a></p>
		</div>`,
		bk.Name,
		bk.Email, bk.Email,
		bk.Phone, bk.Phone,
		bk.ServiceType,
		orFallback(bk.EventDate, "Not specified"),
		orFallback(bk.EventTime, "Not specified"),
		orFallback(bk.Message, "No message"),
		appURL,
	)
}
