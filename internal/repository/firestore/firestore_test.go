package firestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
)

func TestStoreErr_MapsToDatabaseError(t *testing.T) {
	cause := status.Error(codes.Unavailable, "firestore is unavailable")

	err := storeErr("get provider p-1", cause)

	assert.ErrorIs(t, err, apperrors.ErrDatabaseError)
	// исходная причина остаётся в цепочке
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "get provider p-1")
}
