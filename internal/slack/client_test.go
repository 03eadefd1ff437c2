package slack

import (
	"testing"

	slackapi "github.com/slack-go/slack"
)

func channel(name, id string) slackapi.Channel {
	return slackapi.Channel{
		GroupConversation: slackapi.GroupConversation{
			Name:         name,
			Conversation: slackapi.Conversation{ID: id},
		},
	}
}

func TestClassify(t *testing.T) {
	public := channel("general", "C001")

	private := channel("secrets", "C002")
	private.IsPrivate = true

	group := channel("oldgroup", "G001")
	group.IsGroup = true

	im := channel("", "D001")
	im.IsIM = true
	im.User = "U123"

	mpim := channel("mpdm-a--b--c-1", "G002")
	mpim.IsMpIM = true

	tests := []struct {
		name     string
		ch       slackapi.Channel
		wantType string
		wantUser string
	}{
		{"public", public, "public_channel", ""},
		{"private", private, "private_channel", ""},
		{"legacy group", group, "private_channel", ""},
		{"im", im, "im", "U123"},
		{"mpim", mpim, "mpim", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Classify(tt.ch)
			if info.ChannelType != tt.wantType {
				t.Errorf("ChannelType = %q, want %q", info.ChannelType, tt.wantType)
			}
			if info.UserID != tt.wantUser {
				t.Errorf("UserID = %q, want %q", info.UserID, tt.wantUser)
			}
			if info.ChannelID != tt.ch.ID {
				t.Errorf("ChannelID = %q, want %q", info.ChannelID, tt.ch.ID)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	info := ChannelInfo{Name: "Team-Deploys"}

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"deploy", true},
		{"TEAM", true},
		{"team-deploys", true},
		{"random", false},
	}

	for _, tt := range tests {
		if got := Matches(info, tt.query); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}
