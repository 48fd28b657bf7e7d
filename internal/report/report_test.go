package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailtoURL(t *testing.T) {
	assert.Equal(t,
		"mailto:cameron@astrocb.me?subject=UMD%20Gym%20Error%20Report",
		MailtoURL(),
		"report URL should carry the fixed recipient and subject with an empty body")
}

func TestSend_UsesMailHandler(t *testing.T) {
	orig := openURL
	t.Cleanup(func() { openURL = orig })

	var opened string
	openURL = func(u string) error {
		opened = u
		return nil
	}

	assert.NoError(t, Send())
	assert.Equal(t, MailtoURL(), opened, "Send should open exactly the report URL")
}

func TestSend_WrapsOpenFailure(t *testing.T) {
	orig := openURL
	t.Cleanup(func() { openURL = orig })

	openURL = func(string) error { return errors.New("no handler registered") }

	err := Send()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "open mail client")
}
