package email

import "fmt"

// Pre-built messages for account and order lifecycle notifications.

// Welcome greets a new account right after registration.
func Welcome(to, name string) Message {
	return Message{
		To:      to,
		Subject: "Welcome to PharmaCare",
		Text: fmt.Sprintf(
			"Hi %s,\n\nYour PharmaCare account is ready. Browse the catalog, upload prescriptions and track your orders from your profile.\n\nPharmaCare",
			name,
		),
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your PharmaCare account is ready. Browse the catalog, upload prescriptions and track your orders from your profile.</p><p>PharmaCare</p>",
			name,
		),
	}
}

// OrderConfirmation is sent right after checkout.
func OrderConfirmation(to, name, orderNumber string, total float64) Message {
	return Message{
		To:      to,
		Subject: fmt.Sprintf("Order %s confirmed", orderNumber),
		Text: fmt.Sprintf(
			"Hi %s,\n\nWe received your order %s for $%.2f. We will let you know when it ships.\n\nPharmaCare",
			name, orderNumber, total,
		),
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>We received your order <b>%s</b> for <b>$%.2f</b>. We will let you know when it ships.</p><p>PharmaCare</p>",
			name, orderNumber, total,
		),
	}
}

// OrderDelivered is sent when an order transitions to delivered.
func OrderDelivered(to, name, orderNumber string) Message {
	return Message{
		To:      to,
		Subject: fmt.Sprintf("Order %s delivered", orderNumber),
		Text: fmt.Sprintf(
			"Hi %s,\n\nYour order %s has been delivered. We hope you feel better soon!\n\nPharmaCare",
			name, orderNumber,
		),
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your order <b>%s</b> has been delivered. We hope you feel better soon!</p><p>PharmaCare</p>",
			name, orderNumber,
		),
	}
}

// PrescriptionReviewed tells a customer the outcome of a prescription review.
func PrescriptionReviewed(to, name, status, adminNotes string) Message {
	body := fmt.Sprintf("Hi %s,\n\nYour prescription has been %s.", name, status)
	if adminNotes != "" {
		body += "\n\nPharmacist notes: " + adminNotes
	}
	body += "\n\nPharmaCare"

	return Message{
		To:      to,
		Subject: "Your prescription has been reviewed",
		Text:    body,
	}
}
