package impl

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"

	mockRepo "sklad/internal/mocks/repository"
)

// sha256Hex mirrors the storage form of refresh tokens.
func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))

	return hex.EncodeToString(sum[:])
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newStubTxManager wires a pass-through transaction manager over the
// given mocks so the unit of work runs directly in the test.
func newStubTxManager(factory *mockRepo.StubRepositoryFactory) *mockRepo.StubTransactionManager {
	return &mockRepo.StubTransactionManager{Factory: factory}
}
