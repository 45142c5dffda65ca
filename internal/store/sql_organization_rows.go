package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-tasklist/models"
)

// organizationColumns is the column order every organization SELECT and
// RETURNING clause uses; [scanOrganization] relies on it.
var organizationColumns = []string{"name", "active", "description", "group_names", "user_names"}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrganization(row rowScanner) (models.Organization, error) {
	var (
		org           models.Organization
		groups, users []byte
	)

	if err := row.Scan(&org.Name, &org.Active, &org.Description, &groups, &users); err != nil {
		return models.Organization{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var err error
	if org.Groups, err = decodeList(groups); err != nil {
		return models.Organization{}, err
	}
	if org.Users, err = decodeList(users); err != nil {
		return models.Organization{}, err
	}

	return org, nil
}

func scanOrganizations(rows *sql.Rows) ([]models.Organization, error) {
	result := make([]models.Organization, 0)
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, org)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// encodeList stores a string list as a JSON array; nil becomes "[]".
func encodeList(list []string) (string, error) {
	if list == nil {
		return "[]", nil
	}

	raw, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingList, err)
	}

	return string(raw), nil
}

// decodeList is the inverse of [encodeList]. Empty arrays decode to nil so a
// stored organization compares equal to the one that was saved.
func decodeList(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingList, err)
	}
	if len(list) == 0 {
		return nil, nil
	}

	return list, nil
}
