package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sinopos/storefront-api/internal/domain/entity"
	"github.com/sinopos/storefront-api/internal/domain/repository"
)

var _ repository.InquiryRepository = (*InquiryRepo)(nil)

// InquiryRepo implements the InquiryRepository port over PostgreSQL.
type InquiryRepo struct {
	q Querier
}

// NewInquiryRepository builds the persistence adapter for inquiries.
func NewInquiryRepository(q Querier) *InquiryRepo {
	return &InquiryRepo{q: q}
}

const inquiryColumns = `id, number, product_id, name, email, phone, company, message, source, status, is_read, created_at`

// Create persists a new inquiry.
func (r *InquiryRepo) Create(inquiry *entity.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, number, product_id, name, email, phone, company, message, source, status, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		inquiry.ID, inquiry.Number, nullIfEmpty(inquiry.ProductID), inquiry.Name,
		inquiry.Email, inquiry.Phone, inquiry.Company, inquiry.Message,
		inquiry.Source, inquiry.Status, inquiry.IsRead, inquiry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

// GetByID fetches an inquiry by ID. (nil, nil) when absent.
func (r *InquiryRepo) GetByID(id string) (*entity.Inquiry, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+inquiryColumns+` FROM inquiries WHERE id = $1`, id)
	in, err := scanInquiry(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	return in, nil
}

// ListBefore returns up to limit inquiries strictly older than before, newest
// first. The timestamp cursor stays correct under concurrent inserts, unlike
// an offset. status filters when non-empty.
func (r *InquiryRepo) ListBefore(before time.Time, limit int, status string) ([]*entity.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE created_at < $1`
	args := []any{before}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inquiry
	for rows.Next() {
		in, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		list = append(list, in)
	}
	return list, rows.Err()
}

// CountUnread returns the number of unread inquiries.
func (r *InquiryRepo) CountUnread() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM inquiries WHERE NOT is_read`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count unread inquiries: %w", err)
	}
	return n, nil
}

// UpdateStatus moves an inquiry to the given status.
func (r *InquiryRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inquiries SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update inquiry status: %w", err)
	}
	return nil
}

// SetRead flips the read flag.
func (r *InquiryRepo) SetRead(id string, read bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inquiries SET is_read = $2 WHERE id = $1`, id, read)
	if err != nil {
		return fmt.Errorf("set inquiry read: %w", err)
	}
	return nil
}

// Delete removes a single inquiry.
func (r *InquiryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inquiry: %w", err)
	}
	return nil
}

// DeleteMany removes inquiries in bulk.
func (r *InquiryRepo) DeleteMany(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM inquiries WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("delete inquiries: %w", err)
	}
	return nil
}

func scanInquiry(row rowScanner) (*entity.Inquiry, error) {
	var in entity.Inquiry
	var productID sql.NullString
	if err := row.Scan(&in.ID, &in.Number, &productID, &in.Name, &in.Email, &in.Phone,
		&in.Company, &in.Message, &in.Source, &in.Status, &in.IsRead, &in.CreatedAt); err != nil {
		return nil, err
	}
	in.ProductID = productID.String
	return &in, nil
}
