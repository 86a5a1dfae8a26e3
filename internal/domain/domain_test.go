package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		identity Identity
		wantErr  string
	}{
		{name: "email only", identity: Identity{ID: "u-1", Email: "a@example.com"}},
		{name: "phone only", identity: Identity{ID: "u-1", Phone: "+33612345678"}},
		{name: "missing id", identity: Identity{Email: "a@example.com"}, wantErr: "identity id is required"},
		{name: "missing contact", identity: Identity{ID: "u-1", Name: "Slim"}, wantErr: "email or phone is required"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.identity.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestMergeEntitlementKeepsIdentityFields(t *testing.T) {
	t.Parallel()

	base := Identity{ID: "u-1", Email: "a@example.com", Name: "Ada", Phone: "+331"}
	merged := base.MergeEntitlement(NewEntitlement(true, SubscriptionActive))

	assert.True(t, merged.IsPremium)
	assert.Equal(t, SubscriptionActive, merged.SubscriptionStatus)
	assert.Equal(t, base.ID, merged.ID)
	assert.Equal(t, base.Email, merged.Email)
	assert.Equal(t, base.Name, merged.Name)
	assert.Equal(t, base.Phone, merged.Phone)
	assert.False(t, base.IsPremium, "merge must not mutate the receiver")
}

func TestMergeEntitlementKeepsUnreportedFields(t *testing.T) {
	t.Parallel()

	base := Identity{ID: "u-1", Email: "a@example.com", IsPremium: true, SubscriptionStatus: SubscriptionActive}

	merged := base.MergeEntitlement(Entitlement{SubscriptionEndDate: "2030-01-01"})
	assert.True(t, merged.IsPremium)
	assert.Equal(t, SubscriptionActive, merged.SubscriptionStatus)
	assert.Equal(t, "2030-01-01", merged.SubscriptionEndDate)

	canceled := SubscriptionCanceled
	merged = base.MergeEntitlement(Entitlement{SubscriptionStatus: &canceled})
	assert.True(t, merged.IsPremium)
	assert.Equal(t, SubscriptionCanceled, merged.SubscriptionStatus)
}

func TestParseSubscriptionStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SubscriptionActive, ParseSubscriptionStatus("active"))
	assert.Equal(t, SubscriptionPastDue, ParseSubscriptionStatus(" PAST_DUE "))
	assert.Equal(t, SubscriptionAbsent, ParseSubscriptionStatus("none"))
	assert.Equal(t, SubscriptionAbsent, ParseSubscriptionStatus("incomplete"))
}

func TestApplyProfile(t *testing.T) {
	t.Parallel()

	base := Identity{ID: "u-1", Email: "a@example.com"}
	name := "  Ada  "
	updated, err := base.ApplyProfile(ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.Name)

	bad := "not-an-email"
	_, err = base.ApplyProfile(ProfileUpdate{Email: &bad})
	require.ErrorIs(t, err, ErrValidation)

	empty := ""
	_, err = base.ApplyProfile(ProfileUpdate{Email: &empty})
	assert.ErrorContains(t, err, "email or phone is required")
}

func TestValidateSignup(t *testing.T) {
	t.Parallel()

	valid := SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "longenough", ConfirmPassword: "longenough"}
	require.NoError(t, ValidateSignup(valid))

	mismatch := valid
	mismatch.ConfirmPassword = "different1"
	err := ValidateSignup(mismatch)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "confirm_password", verr.Field)

	short := valid
	short.Password, short.ConfirmPassword = "short", "short"
	assert.ErrorContains(t, ValidateSignup(short), "at least 8 characters")

	badEmail := valid
	badEmail.Email = "ada"
	assert.ErrorIs(t, ValidateSignup(badEmail), ErrValidation)
}

func TestValidateLoginAcceptsBareIdentifier(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateLogin("slim", "123"))
	assert.ErrorIs(t, ValidateLogin(" ", "123"), ErrValidation)
	assert.ErrorIs(t, ValidateLogin("slim", ""), ErrValidation)
}

func TestNormalizePhoneNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dialCode string
		raw      string
		want     string
		wantErr  bool
	}{
		{name: "formatted national", dialCode: "+33", raw: "06 12 34 56 78", want: "+33612345678"},
		{name: "already international", dialCode: "+1", raw: "+33 6 12 34 56 78", want: "+33612345678"},
		{name: "too short", dialCode: "+33", raw: "0612", wantErr: true},
		{name: "missing dial code", dialCode: "", raw: "0612345678", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := NormalizePhoneNumber(tc.dialCode, tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateVerificationCode(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateVerificationCode("123456"))
	assert.Error(t, ValidateVerificationCode("12345"))
	assert.Error(t, ValidateVerificationCode("12a456"))
}

func TestIdentityDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ada", Identity{ID: "u", Name: "Ada", Email: "a@example.com"}.DisplayName())
	assert.Equal(t, "a@example.com", Identity{ID: "u", Email: "a@example.com"}.DisplayName())
	assert.Equal(t, "+331", Identity{ID: "u", Phone: "+331"}.DisplayName())
}
