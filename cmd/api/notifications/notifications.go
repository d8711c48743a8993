package notifications

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Ntfy pushes circulation events to an ntfy.sh style topic server.
// Deliveries are best effort: callers log failures and move on.
type Ntfy struct {
	baseURL string
	enabled bool
	client  *http.Client
}

func NewNtfy(enableNotifications bool, notificationsBaseURL string, client *http.Client) *Ntfy {
	return &Ntfy{
		baseURL: notificationsBaseURL,
		enabled: enableNotifications,
		client:  client,
	}
}

/* Notifies that a fine was issued for a late return. */
func (ntf *Ntfy) FineIssued(ctx context.Context, membershipNumber string, amount float64) error {
	message := fmt.Sprintf("Fine issued:\nMember: %s\nAmount: %.2f", membershipNumber, amount)
	return ntf.publish(ctx, "/Fine_issued", message)
}

/* Notifies that a member was suspended for too many overdue loans. */
func (ntf *Ntfy) MemberSuspended(ctx context.Context, membershipNumber string) error {
	message := fmt.Sprintf("Member suspended:\nMember: %s", membershipNumber)
	return ntf.publish(ctx, "/Member_suspended", message)
}

func (ntf *Ntfy) publish(ctx context.Context, topic, message string) error {
	if !ntf.enabled {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ntf.baseURL+topic, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("error delivering message (%s) to topic (%s): %w", message, ntf.baseURL+topic, err)
	}
	resp, err := ntf.client.Do(req)
	if err != nil {
		return fmt.Errorf("error delivering message (%s) to topic (%s): %w", message, ntf.baseURL+topic, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return NewErrNotificationFailed(resp.StatusCode)
	}
	return nil
}
