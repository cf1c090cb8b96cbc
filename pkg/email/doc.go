// Package email provides transactional email delivery behind the
// EmailSender interface, with a Postmark implementation for production and a
// logging sender for development.
package email
