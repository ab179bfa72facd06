package queries

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Emagjby/LogiPack/internal/pkg/errs"

	"gorm.io/gorm"
	"lukechampine.com/blake3"
)

// VerifyStreamQueryHandler recomputes and checks the chain properties of one
// stream straight from storage:
//
//   - every package's hash equals the hash of its stored canonical bytes
//   - seq starts at 1 and is gapless
//   - each package's prev_hash equals the previous package's hash, nil for
//     the first
//   - the stream's head_hash equals the last package's hash, nil when the
//     stream is empty
//
// Violations are reported, not repaired; the log is append-only.
type VerifyStreamQueryHandler struct {
	db *gorm.DB
}

// NewVerifyStreamQueryHandler creates a handler for stream audits.
func NewVerifyStreamQueryHandler(db *gorm.DB) VerifyStreamQueryHandler {
	return VerifyStreamQueryHandler{db: db}
}

// Handle executes the audit for one stream.
func (h VerifyStreamQueryHandler) Handle(ctx context.Context, query VerifyStreamQuery) (StreamVerificationResponse, error) {
	if err := query.Validate(); err != nil {
		return StreamVerificationResponse{}, err
	}

	resp := StreamVerificationResponse{StreamID: query.StreamID()}

	var headHash []byte
	row := h.db.WithContext(ctx).Raw(`
		SELECT head_hash FROM streams WHERE id = ?
	`, query.StreamID().Bytes()).Row()
	if err := row.Scan(&headHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StreamVerificationResponse{}, errs.NewObjectNotFoundError("stream", query.StreamID().String())
		}
		return StreamVerificationResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT seq, hash, prev_hash, scb
		FROM packages
		WHERE stream_id = ?
		ORDER BY seq ASC
	`, query.StreamID().Bytes()).Rows()
	if err != nil {
		return StreamVerificationResponse{}, err
	}
	defer rows.Close()

	var prevHash []byte
	var lastHash []byte
	expectedSeq := int64(1)

	for rows.Next() {
		var seq int64
		var hash, pkgPrevHash, scb []byte
		if err = rows.Scan(&seq, &hash, &pkgPrevHash, &scb); err != nil {
			return StreamVerificationResponse{}, err
		}

		if seq != expectedSeq {
			resp.Violations = append(resp.Violations,
				fmt.Sprintf("seq gap: expected %d, found %d", expectedSeq, seq))
			expectedSeq = seq
		}

		sum := blake3.Sum256(scb)
		if !bytes.Equal(sum[:], hash) {
			resp.Violations = append(resp.Violations,
				fmt.Sprintf("seq %d: stored hash does not match canonical bytes", seq))
		}

		if !bytes.Equal(pkgPrevHash, prevHash) {
			resp.Violations = append(resp.Violations,
				fmt.Sprintf("seq %d: prev_hash does not link to previous package", seq))
		}

		prevHash = hash
		lastHash = hash
		expectedSeq++
		resp.PackageCount++
	}

	if err = rows.Err(); err != nil {
		return StreamVerificationResponse{}, err
	}

	if !bytes.Equal(headHash, lastHash) {
		resp.Violations = append(resp.Violations,
			"stream head_hash does not match the last package hash")
	}

	resp.OK = len(resp.Violations) == 0
	return resp, nil
}
