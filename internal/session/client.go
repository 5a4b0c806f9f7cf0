// Package session wraps the gotd Telegram client behind the small surface the
// scraper needs: an authorized connection, channel resolution and newest-first
// history iteration.
package session

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	tdsession "github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/telegram/peers"
	"github.com/gotd/td/telegram/query"
	"github.com/gotd/td/tg"

	"github.com/tgscan/tg-file-scraper/internal/config"
	"github.com/tgscan/tg-file-scraper/internal/logger"
	"github.com/tgscan/tg-file-scraper/internal/types"
)

const historyBatchSize = 100

// Channel is a resolved channel handle usable for history iteration.
type Channel struct {
	Title string
	peer  tg.InputPeerClass
}

// Client is an authenticated Telegram session.
type Client struct {
	client *telegram.Client
	api    *tg.Client
	peers  *peers.Manager
	phone  string
}

// New builds a Client from the credentials in cfg. Missing credentials are
// reported here, before any connection attempt.
func New(cfg config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := telegram.NewClient(cfg.APIID, cfg.APIHash, telegram.Options{
		SessionStorage: &tdsession.FileStorage{Path: cfg.SessionFile},
	})
	api := client.API()

	return &Client{
		client: client,
		api:    api,
		peers:  peers.Options{}.Build(api),
		phone:  cfg.Phone,
	}, nil
}

// Run connects, makes sure the account is authorized and invokes fn with a
// live session. The connection is released on every return path, success or
// failure.
func (c *Client) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	return c.client.Run(ctx, func(ctx context.Context) error {
		logger.Infof("Connecting to Telegram...")
		if err := c.authorize(ctx); err != nil {
			return fmt.Errorf("authorization: %w", err)
		}
		return fn(ctx)
	})
}

// authorize runs the interactive code flow when the stored session is not yet
// authorized.
func (c *Client) authorize(ctx context.Context) error {
	status, err := c.client.Auth().Status(ctx)
	if err != nil {
		return err
	}
	if status.Authorized {
		logger.Infof("Connected")
		return nil
	}

	logger.Infof("Authorization required, sending code to %s", c.phone)
	flow := auth.NewFlow(
		auth.CodeOnly(c.phone, auth.CodeAuthenticatorFunc(promptCode)),
		auth.SendCodeOptions{},
	)
	if err := c.client.Auth().IfNecessary(ctx, flow); err != nil {
		return err
	}
	logger.Infof("Authorized")
	return nil
}

func promptCode(_ context.Context, _ *tg.AuthSentCode) (string, error) {
	fmt.Print("Enter the login code: ")
	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(code), nil
}

// ResolveChannel resolves a username, @handle or t.me URL to a channel
// handle.
func (c *Client) ResolveChannel(ctx context.Context, identifier string) (Channel, error) {
	p, err := c.peers.Resolve(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return Channel{}, fmt.Errorf("resolving %q: %w", identifier, err)
	}
	return Channel{Title: p.VisibleName(), peer: p.InputPeer()}, nil
}

// ForEachMessage walks ch's history newest-first, invoking fn for each
// message until limit messages have been scanned or the history is exhausted.
// Service messages count against the limit but yield no callback.
func (c *Client) ForEachMessage(ctx context.Context, ch Channel, limit int, fn func(types.Message) error) error {
	iter := query.Messages(c.api).GetHistory(ch.peer).BatchSize(historyBatchSize).Iter()

	scanned := 0
	for scanned < limit && iter.Next(ctx) {
		scanned++

		elem := iter.Value()
		msg, ok := elem.Msg.(*tg.Message)
		if !ok {
			continue
		}
		if err := fn(convertMessage(msg, elem.Entities)); err != nil {
			return err
		}
	}
	return iter.Err()
}
