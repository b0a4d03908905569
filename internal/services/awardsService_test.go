package services

import (
	"strings"
	"testing"

	"github.com/saphaniox/sap-technologies.ug-sub002/internal/models"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Voter@Example.COM", "voter@example.com"},
		{"  voter@example.com  ", "voter@example.com"},
		{"\tVOTER@EXAMPLE.COM\n", "voter@example.com"},
		{"already@lower.io", "already@lower.io"},
	}
	for _, tc := range cases {
		if got := NormalizeEmail(tc.in); got != tc.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.StatusPending, models.StatusApproved, true},
		{models.StatusPending, models.StatusRejected, true},
		{models.StatusPending, models.StatusWinner, false},
		{models.StatusPending, models.StatusFinalist, false},
		{models.StatusApproved, models.StatusWinner, true},
		{models.StatusApproved, models.StatusFinalist, true},
		{models.StatusApproved, models.StatusRejected, false},
		{models.StatusRejected, models.StatusApproved, false},
		{models.StatusWinner, models.StatusFinalist, false},
		// any state can be reset to pending
		{models.StatusRejected, models.StatusPending, true},
		{models.StatusWinner, models.StatusPending, true},
		{models.StatusFinalist, models.StatusPending, true},
		{models.StatusApproved, models.StatusPending, true},
	}
	for _, tc := range cases {
		if got := ValidTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("ValidTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestVotingOpen(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{models.StatusApproved, true},
		{models.StatusWinner, true},
		{models.StatusFinalist, true},
		{models.StatusPending, false},
		{models.StatusRejected, false},
		{"", false},
	}
	for _, tc := range cases {
		if got := VotingOpen(tc.status); got != tc.want {
			t.Errorf("VotingOpen(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestAwardTitleFor(t *testing.T) {
	if got := AwardTitleFor(models.StatusWinner); got != "Winner" {
		t.Errorf("winner title = %q", got)
	}
	if got := AwardTitleFor(models.StatusFinalist); got != "Finalist" {
		t.Errorf("finalist title = %q", got)
	}
	if got := AwardTitleFor(models.StatusApproved); got != "Nominee" {
		t.Errorf("approved title = %q", got)
	}
}

func TestStatusChangedBody(t *testing.T) {
	nom := models.Nomination{
		NomineeName:   "Jane Doe",
		NominatorName: "John Smith",
	}

	body := statusChangedBody(nom, "Innovation", models.StatusWinner)
	for _, want := range []string{"Jane Doe", "John Smith", "Innovation", "Winner"} {
		if !strings.Contains(body, want) {
			t.Errorf("winner body missing %q: %s", want, body)
		}
	}

	rejected := statusChangedBody(nom, "Innovation", models.StatusRejected)
	if !strings.Contains(rejected, "not approved") {
		t.Errorf("rejected body should mention not approved: %s", rejected)
	}
}
