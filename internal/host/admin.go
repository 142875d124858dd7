// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package host is a minimal in-process administration host: it keeps user
// accounts, authenticates logins and renders the user listing and profile,
// calling registered extension handlers at each step.
package host

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/store-last-login/internal/i18n"
	"github.com/MKhiriev/store-last-login/internal/logger"
	"github.com/MKhiriev/store-last-login/internal/plugin"
	"github.com/MKhiriev/store-last-login/internal/query"
	"github.com/MKhiriev/store-last-login/internal/store"
	"github.com/MKhiriev/store-last-login/models"
)

// Built-in listing columns.
const (
	ColumnUsername = "username"
	ColumnName     = "name"
	ColumnEmail    = "email"
)

// Admin implements [plugin.Host].
type Admin struct {
	users      store.UserRepository
	auth       *Authenticator
	translator i18n.Translator

	loginRedirect []plugin.LoginRedirectHandler
	profile       []plugin.ProfileSectionHandler
	preUserQuery  []plugin.PreUserQueryHandler
	columnData    []plugin.ColumnDataHandler
	columns       []plugin.ColumnsHandler
	sortable      []plugin.SortableColumnsHandler

	logger *logger.Logger
}

func NewAdmin(users store.UserRepository, auth *Authenticator, translator i18n.Translator, logger *logger.Logger) *Admin {
	return &Admin{
		users:      users,
		auth:       auth,
		translator: translator,
		logger:     logger,
	}
}

func (a *Admin) OnLoginRedirect(h plugin.LoginRedirectHandler) {
	a.loginRedirect = append(a.loginRedirect, h)
}

func (a *Admin) OnProfileSection(h plugin.ProfileSectionHandler) {
	a.profile = append(a.profile, h)
}

func (a *Admin) OnPreUserQuery(h plugin.PreUserQueryHandler) {
	a.preUserQuery = append(a.preUserQuery, h)
}

func (a *Admin) OnColumnData(h plugin.ColumnDataHandler) {
	a.columnData = append(a.columnData, h)
}

func (a *Admin) OnColumns(h plugin.ColumnsHandler) {
	a.columns = append(a.columns, h)
}

func (a *Admin) OnSortableColumns(h plugin.SortableColumnsHandler) {
	a.sortable = append(a.sortable, h)
}

// RequestContext returns ctx carrying a request-scoped logger tagged with a
// fresh trace id.
func (a *Admin) RequestContext(ctx context.Context) context.Context {
	traceID, err := uuid.NewV7()
	if err != nil {
		traceID = uuid.New()
	}
	return a.logger.WithTraceID(ctx, traceID.String())
}

// AddUser registers a new account with a bcrypt hashed password.
func (a *Admin) AddUser(ctx context.Context, user models.User, password string) (models.User, error) {
	if user.Login == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	hash, err := a.auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = hash

	created, err := a.users.CreateUser(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Admin.AddUser").Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}
	return created, nil
}

// Login authenticates the credentials and runs the login redirect handlers.
// It returns the final redirect target and the authentication result.
func (a *Admin) Login(ctx context.Context, login, password, redirectTo string) (string, models.AuthResult) {
	result := a.auth.Authenticate(ctx, login, password)
	for _, h := range a.loginRedirect {
		redirectTo = h(ctx, redirectTo, result)
	}
	return redirectTo, result
}

// Columns returns the listing columns after every column handler ran.
func (a *Admin) Columns() models.Columns {
	cols := models.Columns{
		{Key: ColumnUsername, Label: a.translator.T(i18n.Username)},
		{Key: ColumnName, Label: a.translator.T(i18n.Name)},
		{Key: ColumnEmail, Label: a.translator.T(i18n.Email)},
	}
	for _, h := range a.columns {
		cols = h(cols)
	}
	return cols
}

// SortableColumns maps sortable column keys to their orderby value.
func (a *Admin) SortableColumns() map[string]string {
	sortable := map[string]string{
		ColumnUsername: "login",
		ColumnName:     "name",
		ColumnEmail:    "email",
	}
	for _, h := range a.sortable {
		sortable = h(sortable)
	}
	return sortable
}

// ListUsers builds the listing plan for req, lets the pre-query handlers
// adjust it, runs it and renders every cell through the column handlers.
// An OrderBy naming a sortable column is translated to its orderby value.
func (a *Admin) ListUsers(ctx context.Context, req models.ListingRequest) (models.Table, error) {
	log := logger.FromContext(ctx)

	if req.Screen == "" {
		req.Screen = models.UsersScreen
	}
	if orderBy, ok := a.SortableColumns()[req.OrderBy]; ok {
		req.OrderBy = orderBy
	}

	q := query.NewUserQuery(req)
	for _, h := range a.preUserQuery {
		h(ctx, req, q)
	}

	users, err := a.users.ListUsers(ctx, q)
	if err != nil {
		log.Err(err).Str("func", "*Admin.ListUsers").Msg("listing query failed")
		return models.Table{}, fmt.Errorf("%w: %w", ErrListingUsers, err)
	}

	table := models.Table{Columns: a.Columns(), Rows: make([]models.Row, 0, len(users))}
	for _, u := range users {
		row := models.Row{UserID: u.ID, Cells: make(map[string]string, len(table.Columns))}
		for _, col := range table.Columns {
			value := baseCell(u, col.Key)
			for _, h := range a.columnData {
				value = h(ctx, value, col.Key, u.ID)
			}
			row.Cells[col.Key] = value
		}
		table.Rows = append(table.Rows, row)
	}
	log.Debug().Str("func", "*Admin.ListUsers").Int("rows", len(table.Rows)).Msg("users listed")

	return table, nil
}

// RenderProfile writes the profile table of login, one row per profile
// section handler.
func (a *Admin) RenderProfile(ctx context.Context, w io.Writer, login string) error {
	user, err := a.users.FindUserByLogin(ctx, login)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRenderingProfile, err)
	}
	identity := models.Identity{ID: user.ID, Login: user.Login}

	var b strings.Builder
	b.WriteString(`<table class="form-table">`)
	for _, h := range a.profile {
		if err = h(ctx, &b, identity); err != nil {
			return fmt.Errorf("%w: %w", ErrRenderingProfile, err)
		}
	}
	b.WriteString(`</table>`)

	if _, err = io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderingProfile, err)
	}
	return nil
}

func baseCell(u models.User, column string) string {
	switch column {
	case ColumnUsername:
		return html.EscapeString(u.Login)
	case ColumnName:
		return html.EscapeString(u.DisplayName)
	case ColumnEmail:
		return html.EscapeString(u.Email)
	default:
		return ""
	}
}
