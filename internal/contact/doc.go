// Package contact handles the contact form.
//
// Form mirrors the on-page form: it shows a confirmation after a complete
// submission and clears itself once the confirmation has been displayed for
// ConfirmDelay. Service is the server-side receiver of the same submission.
//
// No message is ever transmitted anywhere. At most it is appended to the
// optional local inbox.
package contact
