//go:build unit

package account_test

import (
	"testing"

	"nailbook/internal/domain/account"
	"nailbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AccountBuilder)
	errIs  error
}

func TestAccount(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewAccountBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "testuser", actual.Username())
		assert.False(t, actual.IsAdmin())
	})

	t.Run("管理者判定", func(t *testing.T) {
		actual, err := builder.NewAccountBuilder().AsAdmin().BuildDomain()
		require.NoError(t, err)
		assert.True(t, actual.IsAdmin())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.AccountBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.AccountBuilder) { b.WithEmail("") },
				errIs:  account.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.AccountBuilder) { b.WithEmail("invalid-email") },
				errIs:  account.ErrInvalidEmail,
			},
		})
	})

	t.Run("ユーザー名検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空のユーザー名NG",
				mutate: func(b *builder.AccountBuilder) { b.WithUsername("") },
				errIs:  account.ErrInvalidUsername,
			},
			{
				name:   "空白のみのユーザー名NG",
				mutate: func(b *builder.AccountBuilder) { b.WithUsername("   ") },
				errIs:  account.ErrInvalidUsername,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "user ロールOK",
				mutate: func(b *builder.AccountBuilder) { b.Role = "user" },
			},
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.AccountBuilder) { b.Role = "admin" },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.AccountBuilder) { b.Role = "superuser" },
				errIs:  account.ErrInvalidRole,
			},
		})
	})
}

func TestCredentials(t *testing.T) {
	t.Run("パスワード最小長", func(t *testing.T) {
		_, err := account.NewCredentials("a@b.com", "short")
		require.ErrorIs(t, err, account.ErrPasswordTooWeak)

		creds, err := account.NewCredentials("a@b.com", "longenough")
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", creds.Email().Value())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAccountBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
