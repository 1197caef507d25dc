package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/otabek/juniorhub/internal/pkg/apperrors"
)

func pgError(code, constraint string) error {
	return fmt.Errorf("exec failed: %w", &pgconn.PgError{Code: code, ConstraintName: constraint})
}

func TestMapHeroWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "duplicate triple",
			err:  pgError("23505", heroUniqueConstraint),
			want: apperrors.ErrHeroAlreadyExists,
		},
		{
			name: "dangling month",
			err:  pgError("23503", heroMonthFKConstraint),
			want: apperrors.ErrMonthNotFound,
		},
		{
			name: "dangling user",
			err:  pgError("23503", heroUserFKConstraint),
			want: apperrors.ErrUserNotFound,
		},
		{
			name: "invalid type",
			err:  pgError("23514", "month_heroes_type_check"),
			want: apperrors.ErrValidationFailed,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection reset"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapHeroWriteError(tt.err)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
