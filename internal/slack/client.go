// Package slack is the thin adapter for the Slack Web API.
// 設定・クレデンシャル解決のコアからは外部コラボレータとして扱われ、
// 解決済みの Context を受け取るだけで設定の決定には関与しない。
package slack

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	slackapi "github.com/slack-go/slack"
)

// ChannelInfo は検索結果の1チャンネル
type ChannelInfo struct {
	Name        string `json:"name"`
	ChannelType string `json:"type"`
	ChannelID   string `json:"channel_id"`
	UserID      string `json:"user_id,omitempty"`
}

// Client は送信・検索の操作面。テストではフェイクに差し替える。
type Client interface {
	PostMessage(ctx context.Context, channel, text string) error
	UploadFile(ctx context.Context, channel, filename string, data []byte, comment string) error
	SearchChannels(ctx context.Context, query string, types []string) ([]ChannelInfo, error)
}

// New はトークンに束縛されたクライアントを作る。
func New(token string) Client {
	return &client{api: slackapi.New(token)}
}

type client struct {
	api *slackapi.Client
}

func (c *client) PostMessage(ctx context.Context, channel, text string) error {
	_, _, err := c.api.PostMessageContext(ctx, channel, slackapi.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to post message: %w", err)
	}
	return nil
}

func (c *client) UploadFile(ctx context.Context, channel, filename string, data []byte, comment string) error {
	params := slackapi.UploadFileV2Parameters{
		Channel:        channel,
		Filename:       filename,
		Title:          filename,
		FileSize:       len(data),
		Reader:         bytes.NewReader(data),
		InitialComment: comment,
	}
	if _, err := c.api.UploadFileV2Context(ctx, params); err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	return nil
}

// SearchChannels は conversations.list を全ページ辿り、名前に query を
// 含むチャンネルを返す。
func (c *client) SearchChannels(ctx context.Context, query string, types []string) ([]ChannelInfo, error) {
	var out []ChannelInfo
	cursor := ""
	for {
		channels, next, err := c.api.GetConversationsContext(ctx, &slackapi.GetConversationsParameters{
			Types:           types,
			Cursor:          cursor,
			Limit:           200,
			ExcludeArchived: true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list conversations: %w", err)
		}
		for _, ch := range channels {
			info := Classify(ch)
			if Matches(info, query) {
				out = append(out, info)
			}
		}
		if next == "" {
			break
		}
		cursor = next
	}
	return out, nil
}

// Classify は conversations.list の1エントリを種別付きの ChannelInfo に
// 変換する。
func Classify(ch slackapi.Channel) ChannelInfo {
	info := ChannelInfo{
		Name:      ch.Name,
		ChannelID: ch.ID,
	}
	switch {
	case ch.IsIM:
		info.ChannelType = "im"
		info.UserID = ch.User
	case ch.IsMpIM:
		info.ChannelType = "mpim"
	case ch.IsPrivate || ch.IsGroup:
		info.ChannelType = "private_channel"
	default:
		info.ChannelType = "public_channel"
	}
	return info
}

// Matches は名前の部分一致（大文字小文字は無視）。空クエリは全件。
func Matches(info ChannelInfo, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(info.Name), strings.ToLower(query))
}
