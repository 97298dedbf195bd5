package models

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type AdminsRepo interface {
	IsAdminEmail(ctx context.Context, email string) (bool, error)
}

// IsAdminEmail reports whether the authenticated identity's email is listed
// in the admin_users table. Admin access is decided here per request, never
// cached as an ambient flag.
func (su *SupabaseRepo) IsAdminEmail(ctx context.Context, email string) (bool, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return false, fmt.Errorf("email is required")
	}

	data, _, err := su.supabaseClient.
		From(AdminUsersTable).
		Select("email", "exact", false).
		Eq("email", email).
		Execute()
	if err != nil {
		return false, fmt.Errorf("failed to query admin users: %v", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return false, fmt.Errorf("failed to unmarshal admin rows: %v", err)
	}

	return len(rows) > 0, nil
}
