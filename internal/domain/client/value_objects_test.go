//go:build unit

package client_test

import (
	"strings"
	"testing"

	"salon-booking/internal/domain/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  string
		errIs error
	}{
		{name: "international format", raw: "+7 (916) 123-45-67", want: "79161234567"},
		{name: "domestic trunk prefix", raw: "89161234567", want: "89161234567"},
		{name: "ten digit mobile", raw: "916 123 45 67", want: "9161234567"},
		{name: "too short", raw: "12345", errIs: client.ErrInvalidPhone},
		{name: "eleven digits wrong prefix", raw: "19161234567", errIs: client.ErrInvalidPhone},
		{name: "ten digits wrong prefix", raw: "4951234567", errIs: client.ErrInvalidPhone},
		{name: "twelve digits", raw: "791612345678", errIs: client.ErrInvalidPhone},
		{name: "letters", raw: "8916abc4567", errIs: client.ErrInvalidPhone},
		{name: "empty", raw: "", errIs: client.ErrInvalidPhone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := client.NewPhone(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.String())
		})
	}
}

func TestNewName(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  string
		errIs error
	}{
		{name: "two letters", raw: "Al", want: "Al"},
		{name: "cyrillic counts runes", raw: "Ян", want: "Ян"},
		{name: "inner whitespace collapsed", raw: "  Anna   Smith ", want: "Anna Smith"},
		{name: "one letter", raw: "A", errIs: client.ErrInvalidName},
		{name: "blank", raw: "   ", errIs: client.ErrInvalidName},
		{name: "too long", raw: strings.Repeat("a", client.MaxNameLength+1), errIs: client.ErrInvalidName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := client.NewName(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, n.String())
		})
	}
}

func TestDirectory(t *testing.T) {
	name, err := client.NewName("Anna")
	require.NoError(t, err)
	phone, err := client.NewPhone("79161234567")
	require.NoError(t, err)

	_, err = client.NewProfile(" ", name, phone)
	assert.ErrorIs(t, err, client.ErrInvalidUserID)

	first, err := client.NewProfile("tg:2", name, phone)
	require.NoError(t, err)
	second, err := client.NewProfile("tg:1", name, phone)
	require.NoError(t, err)

	renamed, err := client.NewName("Anna K")
	require.NoError(t, err)
	updated, err := client.NewProfile("tg:2", renamed, phone)
	require.NoError(t, err)

	d := client.NewDirectory()
	d.Upsert(first)
	d.Upsert(second)
	d.Upsert(updated)

	assert.Equal(t, 2, d.Len())
	got, ok := d.Get("tg:2")
	require.True(t, ok)
	assert.Equal(t, "Anna K", got.Name().String())

	all := d.All()
	require.Len(t, all, 2)
	assert.Equal(t, "tg:1", all[0].UserID())
}
