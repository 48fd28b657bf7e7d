// Package report opens a pre-addressed support email.
//
// The report is intentionally bare: fixed recipient, fixed subject, empty
// body. The user writes whatever they saw; the subject line is what routes
// the mail.
package report

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/pkg/browser"
)

const (
	recipient = "cameron@astrocb.me"
	subject   = "UMD Gym Error Report"
)

func init() {
	// Stray output from the opener's child process would corrupt the alt
	// screen.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// MailtoURL returns the mailto URL for a support report.
func MailtoURL() string {
	// url.Values encodes spaces as "+", which mail clients take literally
	// in subject lines; mailto wants percent-encoding.
	subj := strings.ReplaceAll(url.QueryEscape(subject), "+", "%20")
	return "mailto:" + recipient + "?subject=" + subj
}

// openURL is swapped out in tests.
var openURL = browser.OpenURL

// Send hands the report URL to the platform's mail handler. An error means
// no handler could be launched; the caller shows the could-not-send-mail
// alert.
func Send() error {
	if err := openURL(MailtoURL()); err != nil {
		return fmt.Errorf("open mail client: %w", err)
	}
	return nil
}
