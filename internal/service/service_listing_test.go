// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/store-last-login/internal/config"
	"github.com/MKhiriev/store-last-login/internal/hooks"
	"github.com/MKhiriev/store-last-login/internal/i18n"
	"github.com/MKhiriev/store-last-login/internal/logger"
	"github.com/MKhiriev/store-last-login/internal/mock"
	"github.com/MKhiriev/store-last-login/models"
)

type listingFixture struct {
	stamps   *mock.MockTimestampStore
	registry *hooks.Registry
	listing  Listing
}

func newListingFixture(t *testing.T, locale string) listingFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	stamps := mock.NewMockTimestampStore(ctrl)
	registry := hooks.NewRegistry()
	translator := i18n.New(locale)
	formatter := NewStampFormatter(config.Display{}, time.UTC, translator, registry, FixedClock(sample.Time().Add(3*time.Hour)))

	return listingFixture{
		stamps:   stamps,
		registry: registry,
		listing:  NewListingService(stamps, formatter, translator, registry, logger.Nop()),
	}
}

func TestListing_RegisterColumns(t *testing.T) {
	f := newListingFixture(t, "en")

	cols := f.listing.RegisterColumns(models.Columns{{Key: "username", Label: "Username"}, {Key: "email", Label: "Email"}})
	assert.Equal(t, models.Columns{
		{Key: "username", Label: "Username"},
		{Key: "email", Label: "Email"},
		{Key: "last-login", Label: "Last Login"},
	}, cols)

	cols = f.listing.RegisterColumns(cols)
	assert.Len(t, cols, 3)

	fr := newListingFixture(t, "fr-CA")
	cols = fr.listing.RegisterColumns(nil)
	assert.Equal(t, models.Columns{{Key: "last-login", Label: "Dernière connexion"}}, cols)
}

func TestListing_SortableColumns(t *testing.T) {
	f := newListingFixture(t, "en")

	assert.Equal(t, map[string]string{"last-login": "last-login"}, f.listing.SortableColumns(nil))
	assert.Equal(t,
		map[string]string{"username": "login", "last-login": "last-login"},
		f.listing.SortableColumns(map[string]string{"username": "login"}),
	)
}

func TestListing_ColumnValue(t *testing.T) {
	ctx := context.Background()

	t.Run("other column passes through", func(t *testing.T) {
		f := newListingFixture(t, "en")
		assert.Equal(t, "admin@example.com", f.listing.ColumnValue(ctx, "admin@example.com", "email", 42))
	})

	t.Run("known instant", func(t *testing.T) {
		f := newListingFixture(t, "en")
		f.stamps.EXPECT().GetLoginTimestamp(ctx, int64(42)).Return(sample, nil)

		assert.Equal(t, "November 14, 2023<br>10:13 pm", f.listing.ColumnValue(ctx, "", "last-login", 42))
	})

	t.Run("sentinel renders never", func(t *testing.T) {
		f := newListingFixture(t, "en")
		f.stamps.EXPECT().GetLoginTimestamp(ctx, int64(7)).Return(models.NeverLoggedIn, nil)

		assert.Equal(t, "<em>never</em>", f.listing.ColumnValue(ctx, "", "last-login", 7))
	})

	t.Run("localized never", func(t *testing.T) {
		f := newListingFixture(t, "ru")
		f.stamps.EXPECT().GetLoginTimestamp(ctx, int64(7)).Return(models.NeverLoggedIn, nil)

		assert.Equal(t, "<em>никогда</em>", f.listing.ColumnValue(ctx, "", "last-login", 7))
	})

	t.Run("read error renders never", func(t *testing.T) {
		f := newListingFixture(t, "en")
		f.stamps.EXPECT().GetLoginTimestamp(ctx, int64(7)).Return(models.NeverLoggedIn, errors.New("db down"))

		assert.Equal(t, "<em>never</em>", f.listing.ColumnValue(ctx, "", "last-login", 7))
	})

	t.Run("display hook runs before sanitizing", func(t *testing.T) {
		f := newListingFixture(t, "en")
		f.stamps.EXPECT().GetLoginTimestamp(ctx, int64(42)).Return(sample, nil)

		var seen hooks.Args
		f.registry.ColumnDisplay.Add(func(_ context.Context, cell string, args hooks.Args) string {
			seen = args
			return `<span class="stamp" onclick="steal()">` + cell + `</span><script>alert(1)</script>`
		})

		got := f.listing.ColumnValue(ctx, "", "last-login", 42)
		assert.Equal(t, `<span class="stamp">November 14, 2023<br>10:13 pm</span>`, got)
		assert.Equal(t, hooks.Args{UserID: 42, Instant: sample}, seen)
	})
}

func TestListing_RenderProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid identity writes nothing", func(t *testing.T) {
		f := newListingFixture(t, "en")

		for _, result := range []models.AuthResult{nil, models.InvalidIdentity{}, models.AuthError{}} {
			var buf bytes.Buffer
			require.NoError(t, f.listing.RenderProfile(ctx, &buf, result))
			assert.Empty(t, buf.String())
		}
	})

	t.Run("human by default", func(t *testing.T) {
		f := newListingFixture(t, "en")
		f.stamps.EXPECT().GetLoginTimestamp(ctx, int64(42)).Return(sample, nil)

		var buf bytes.Buffer
		require.NoError(t, f.listing.RenderProfile(ctx, &buf, models.Identity{ID: 42}))
		assert.Equal(t, `<tr class="user-last-login-time"><th>Last Login</th><td><em>3 hours ago</em></td></tr>`, buf.String())
	})

	t.Run("never", func(t *testing.T) {
		f := newListingFixture(t, "en")
		f.stamps.EXPECT().GetLoginTimestamp(ctx, int64(7)).Return(models.NeverLoggedIn, nil)

		var buf bytes.Buffer
		require.NoError(t, f.listing.RenderProfile(ctx, &buf, models.Identity{ID: 7}))
		assert.Equal(t, `<tr class="user-last-login-time"><th>Last Login</th><td><em>never</em></td></tr>`, buf.String())
	})

	t.Run("kind and display hooks", func(t *testing.T) {
		f := newListingFixture(t, "en")
		f.stamps.EXPECT().GetLoginTimestamp(ctx, int64(42)).Return(sample, nil)

		f.registry.ProfileFormatKind.Add(func(_ context.Context, _ models.FormatKind, _ hooks.Args) models.FormatKind {
			return models.FormatDate
		})
		f.registry.ProfileDisplay.Add(func(_ context.Context, show string, _ hooks.Args) string {
			return show + " <b>&</b>"
		})

		var buf bytes.Buffer
		require.NoError(t, f.listing.RenderProfile(ctx, &buf, models.Identity{ID: 42}))
		assert.Equal(t, `<tr class="user-last-login-time"><th>Last Login</th><td><em>November 14, 2023 &lt;b&gt;&amp;&lt;/b&gt;</em></td></tr>`, buf.String())
	})

	t.Run("write error", func(t *testing.T) {
		f := newListingFixture(t, "en")
		f.stamps.EXPECT().GetLoginTimestamp(ctx, int64(42)).Return(sample, nil)

		err := f.listing.RenderProfile(ctx, failingWriter{}, models.Identity{ID: 42})
		require.ErrorIs(t, err, ErrWritingProfile)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}
