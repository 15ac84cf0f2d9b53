package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientCredits.Error() != "no credits available" {
		t.Errorf("ErrInsufficientCredits has unexpected message: %s", ErrInsufficientCredits.Error())
	}
	if ErrUnknownProduct.Error() != "invalid product ID" {
		t.Errorf("ErrUnknownProduct has unexpected message: %s", ErrUnknownProduct.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientCredits", ErrInsufficientCredits, 4001},
		{"InvalidImage", ErrInvalidImage, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"InvalidInstruction", ErrInvalidInstruction, 4004},
		{"InvalidMode", ErrInvalidMode, 4005},
		{"InvalidTier", ErrInvalidTier, 4006},
		{"UnknownProduct", ErrUnknownProduct, 4007},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"ImageNotFound", ErrImageNotFound, 4041},
		{"UserLocked", ErrUserLocked, 4230},
		{"TransformFailed", NewTransformError("enhance", "standard", errors.New("boom")), 5020},
		{"StorageFailed", NewStorageError("put", "enhanced", "", errors.New("boom")), 5030},
		{"IntegrityMismatch", NewStorageError("verify", "original", "k", ErrIntegrityMismatch), 5031},
		{"RefundWinsOverStorage", errors.Join(
			NewStorageError("put", "enhanced", "", errors.New("boom")),
			NewRefundError("u1", "standard", "storage", errors.New("db down")),
		), 5040},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientCreditsError(t *testing.T) {
	err := NewInsufficientCreditsError("device-1", "hd", 0, 0)
	if err == nil {
		t.Fatal("NewInsufficientCreditsError returned nil")
	}

	expectedErrMsg := "no hd credits available for user device-1 (credits: 0, remaining today: 0)"
	if err.Error() != expectedErrMsg {
		t.Errorf("InsufficientCreditsError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrInsufficientCredits) {
		t.Errorf("errors.Is(err, ErrInsufficientCredits) = false, want true")
	}

	if !IsInsufficientCreditsError(fmt.Errorf("admit: %w", err)) {
		t.Errorf("IsInsufficientCreditsError(wrapped) = false, want true")
	}
}

func TestTransformError(t *testing.T) {
	gatewayErr := errors.New("no image data received")
	err := NewTransformError("colorize", "standard", gatewayErr)

	expectedErrMsg := "transform failed for mode colorize (tier: standard): no image data received"
	if err.Error() != expectedErrMsg {
		t.Errorf("TransformError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrTransformFailed) {
		t.Errorf("errors.Is(err, ErrTransformFailed) = false, want true")
	}
	if !errors.Is(err, gatewayErr) {
		t.Errorf("errors.Is(err, gatewayErr) = false, want true")
	}
}

func TestStorageAndRefundErrors(t *testing.T) {
	storageErr := NewStorageError("put", "enhanced", "", errors.New("connection reset"))
	refundErr := NewRefundError("u1", "standard", "storage failure", errors.New("deadlock"))
	joined := errors.Join(storageErr, refundErr)

	if !errors.Is(joined, ErrStorageFailed) {
		t.Errorf("errors.Is(joined, ErrStorageFailed) = false, want true")
	}
	if !IsRefundFailedError(joined) {
		t.Errorf("IsRefundFailedError(joined) = false, want true")
	}
	if IsRefundFailedError(storageErr) {
		t.Errorf("IsRefundFailedError(storageErr) = true, want false")
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if IsInsufficientCreditsError(ErrInvalidUserID) {
		t.Errorf("IsInsufficientCreditsError(ErrInvalidUserID) = true, want false")
	}

	for _, err := range []error{ErrInvalidImage, ErrInvalidInstruction, ErrInvalidMode, ErrInvalidTier, ErrUnknownProduct} {
		if !IsValidationError(fmt.Errorf("wrapped: %w", err)) {
			t.Errorf("IsValidationError(%v) = false, want true", err)
		}
	}
	if IsValidationError(ErrStorageFailed) {
		t.Errorf("IsValidationError(ErrStorageFailed) = true, want false")
	}

	if !IsNotFoundError(ErrImageNotFound) || !IsNotFoundError(ErrUserNotFound) {
		t.Errorf("IsNotFoundError should match image and user not found errors")
	}
}

func TestLogFields(t *testing.T) {
	fields := LogFields(fmt.Errorf("charge: %w", NewInsufficientCreditsError("u1", "standard", 0, 0)))
	if fields["error_type"] != "insufficient_credits" {
		t.Errorf("error_type = %v, want insufficient_credits", fields["error_type"])
	}
	if fields["user_id"] != "u1" {
		t.Errorf("user_id = %v, want u1", fields["user_id"])
	}

	plain := LogFields(errors.New("plain"))
	if plain["error_code"] != CodeInternalServer {
		t.Errorf("error_code = %v, want %d", plain["error_code"], CodeInternalServer)
	}
}
