// internal/services/banner_notifier.go
package services

import (
	"fmt"
	"log"
	"time"

	"promomusic/internal/models"
)

// Notifier delivers best-effort emails about banner lifecycle events. A
// failed or slow delivery must never fail the request that triggered it.
type Notifier interface {
	BannerSubmitted(banner *models.BannerAd)
	BannerModerated(banner *models.BannerAd)
}

type BannerNotifier struct {
	sender     EmailSender
	adminEmail string
	timeout    time.Duration
}

func NewBannerNotifier(sender EmailSender, adminEmail string, timeout time.Duration) *BannerNotifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &BannerNotifier{sender: sender, adminEmail: adminEmail, timeout: timeout}
}

func (n *BannerNotifier) BannerSubmitted(banner *models.BannerAd) {
	if n.adminEmail == "" {
		return
	}
	subject := fmt.Sprintf("New banner submission: %s", banner.CampaignName)
	body := fmt.Sprintf(
		"Banner %s is awaiting moderation.\n\nCampaign: %s\nType: %s\nDuration: %d days\nPrice: %d\nOwner: %s\nImage: %s\nTarget: %s\n",
		banner.ID, banner.CampaignName, banner.BannerType, banner.DurationDays,
		banner.Price, banner.UserEmail, banner.ImageURL, banner.TargetURL,
	)
	n.send(n.adminEmail, subject, body)
}

func (n *BannerNotifier) BannerModerated(banner *models.BannerAd) {
	subject := fmt.Sprintf("Your banner campaign %q is now %s", banner.CampaignName, banner.Status)
	body := fmt.Sprintf("Banner %s has been reviewed. Status: %s.\n", banner.ID, banner.Status)
	if banner.RejectionReason != nil {
		body += fmt.Sprintf("Reason: %s\n", *banner.RejectionReason)
	}
	n.send(banner.UserEmail, subject, body)
}

// send delivers asynchronously with a bounded wait. Errors and timeouts are
// logged and swallowed.
func (n *BannerNotifier) send(to string, subject string, body string) {
	go func() {
		done := make(chan error, 1)
		go func() {
			done <- n.sender.Send(to, subject, body)
		}()

		select {
		case err := <-done:
			if err != nil {
				log.Printf("Banner notification to %s failed: %v", to, err)
			}
		case <-time.After(n.timeout):
			log.Printf("Banner notification to %s timed out after %s", to, n.timeout)
		}
	}()
}
