// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/microcosm-cc/bluemonday"

	"github.com/MKhiriev/store-last-login/models"
)

var (
	ErrMissingFlag = errors.New("required flag is missing")
	ErrLoginFailed = errors.New("login failed")
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	strictPolicy = bluemonday.StrictPolicy()
)

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

func (a *app) usersAdd(ctx context.Context, args []string) error {
	fs := newFlagSet("users add")
	fs.SetOutput(a.out)
	login := fs.String("login", "", "login")
	password := fs.String("password", "", "password")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *login == "" || *password == "" {
		return fmt.Errorf("%w: -login and -password", ErrMissingFlag)
	}

	u, err := a.admin.AddUser(ctx, models.User{Login: *login, DisplayName: *name, Email: *email}, *password)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "created user %s (id %d)\n", u.Login, u.ID)
	return err
}

func (a *app) usersList(ctx context.Context, args []string) error {
	fs := newFlagSet("users list")
	fs.SetOutput(a.out)
	req := models.ListingRequest{Screen: models.UsersScreen}
	fs.StringVar(&req.OrderBy, "orderby", "", "sort column (username, name, email, last-login)")
	fs.StringVar(&req.Order, "order", "", "sort direction (ASC or DESC)")
	fs.IntVar(&req.Page, "page", 1, "page number")
	fs.IntVar(&req.PerPage, "per-page", 0, "rows per page, 0 for all")
	if err := fs.Parse(args); err != nil {
		return err
	}

	listing, err := a.admin.ListUsers(ctx, req)
	if err != nil {
		return err
	}

	headers := make([]string, 0, len(listing.Columns))
	for _, col := range listing.Columns {
		headers = append(headers, col.Label)
	}

	rows := make([][]string, 0, len(listing.Rows))
	for _, row := range listing.Rows {
		cells := make([]string, 0, len(listing.Columns))
		for _, col := range listing.Columns {
			cells = append(cells, plainText(row.Cells[col.Key]))
		}
		rows = append(rows, cells)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err = fmt.Fprintln(a.out, t.Render())
	return err
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	fs.SetOutput(a.out)
	login := fs.String("login", "", "login")
	password := fs.String("password", "", "password")
	redirect := fs.String("redirect", "/admin/", "redirect target after login")
	if err := fs.Parse(args); err != nil {
		return err
	}

	to, result := a.admin.Login(ctx, *login, *password, *redirect)
	switch r := result.(type) {
	case models.Identity:
		_, err := fmt.Fprintf(a.out, "logged in as %s, redirecting to %s\n", r.Login, to)
		return err
	case models.InvalidIdentity:
		return fmt.Errorf("%w: %s", ErrLoginFailed, r.Reason)
	case models.AuthError:
		return fmt.Errorf("%w: %w", ErrLoginFailed, r)
	default:
		return ErrLoginFailed
	}
}

func (a *app) profile(ctx context.Context, args []string) error {
	fs := newFlagSet("profile")
	fs.SetOutput(a.out)
	login := fs.String("login", "", "login")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *login == "" {
		return fmt.Errorf("%w: -login", ErrMissingFlag)
	}

	var buf bytes.Buffer
	if err := a.admin.RenderProfile(ctx, &buf, *login); err != nil {
		return err
	}

	text := strings.NewReplacer("</th>", ": ", "</tr>", "\n").Replace(buf.String())
	_, err := fmt.Fprint(a.out, plainText(text))
	return err
}

func (a *app) backfill(ctx context.Context) error {
	n, err := a.services.TimestampStore.BackfillNever(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "marked %d users as never logged in\n", n)
	return err
}

func (a *app) stamp(ctx context.Context, args []string) error {
	fs := newFlagSet("stamp")
	fs.SetOutput(a.out)
	instant := fs.Int64("instant", 0, "epoch seconds")
	kind := fs.String("kind", string(models.FormatHuman), "human, date, time or empty for raw")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, err := fmt.Fprintln(a.out, a.services.StampFormatter.FormatStamp(ctx, models.Instant(*instant), models.FormatKind(*kind), 0))
	return err
}

// plainText turns cell HTML into terminal text.
func plainText(s string) string {
	s = strings.ReplaceAll(s, "<br>", " ")
	return html.UnescapeString(strictPolicy.Sanitize(s))
}
