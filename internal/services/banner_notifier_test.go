package services

import (
	"errors"
	"testing"
	"time"

	"promomusic/internal/models"
)

type captureSender struct {
	ch chan string
}

func (s *captureSender) Send(to string, subject string, body string) error {
	s.ch <- to
	return nil
}

type failingSender struct{}

func (failingSender) Send(to string, subject string, body string) error {
	return errors.New("smtp unreachable")
}

func testBanner() *models.BannerAd {
	return &models.BannerAd{
		ID:           "bn_1",
		UserEmail:    "artist@example.com",
		CampaignName: "Summer tour",
		BannerType:   models.BannerTypeTop,
		DurationDays: 5,
		Price:        75000,
		Status:       models.BannerStatusPending,
	}
}

func TestBannerSubmittedNotifiesAdmin(t *testing.T) {
	sender := &captureSender{ch: make(chan string, 1)}
	n := NewBannerNotifier(sender, "moderation@promo.music", time.Second)

	n.BannerSubmitted(testBanner())

	select {
	case to := <-sender.ch:
		if to != "moderation@promo.music" {
			t.Fatalf("expected admin recipient, got %q", to)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("notification never sent")
	}
}

func TestBannerModeratedNotifiesOwner(t *testing.T) {
	sender := &captureSender{ch: make(chan string, 1)}
	n := NewBannerNotifier(sender, "moderation@promo.music", time.Second)

	b := testBanner()
	b.Status = models.BannerStatusActive
	n.BannerModerated(b)

	select {
	case to := <-sender.ch:
		if to != "artist@example.com" {
			t.Fatalf("expected owner recipient, got %q", to)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("notification never sent")
	}
}

func TestBannerSubmittedSkipsWithoutAdminEmail(t *testing.T) {
	sender := &captureSender{ch: make(chan string, 1)}
	n := NewBannerNotifier(sender, "", time.Second)

	n.BannerSubmitted(testBanner())

	select {
	case to := <-sender.ch:
		t.Fatalf("unexpected notification to %q", to)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestFailingSenderDoesNotBlockCaller(t *testing.T) {
	n := NewBannerNotifier(failingSender{}, "moderation@promo.music", time.Second)

	start := time.Now()
	n.BannerSubmitted(testBanner())
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("notify blocked the caller for %s", elapsed)
	}
}
