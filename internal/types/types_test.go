package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestFlexInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{`25`, 25, false},
		{`"25"`, 25, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{`"abc"`, 0, true},
		{`true`, 0, true},
	}

	for _, tt := range tests {
		var v FlexInt
		err := json.Unmarshal([]byte(tt.in), &v)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.in, err)
			continue
		}
		if v.Int() != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.in, tt.want, v.Int())
		}
	}
}

func TestFlexList(t *testing.T) {
	var single FlexList[string]
	if err := json.Unmarshal([]byte(`"nature"`), &single); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(single) != 1 || single[0] != "nature" {
		t.Errorf("expected [nature], got %v", single)
	}

	var many FlexList[string]
	if err := json.Unmarshal([]byte(`["a","b"]`), &many); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(many.Slice()) != 2 {
		t.Errorf("expected 2 items, got %v", many)
	}
}

func TestRepositoryErrorCodes(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("wrapped: %w", GoldTransactionError(cause, "transfer %d", 5))

	if CodeOf(err) != FailedGoldTransaction {
		t.Errorf("expected FailedGoldTransaction, got %s", CodeOf(err))
	}
	if !errors.Is(err, &RepositoryError{Code: FailedGoldTransaction}) {
		t.Error("expected errors.Is to match on code")
	}
	if errors.Is(err, &RepositoryError{Code: NotFound}) {
		t.Error("expected errors.Is not to match a different code")
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable")
	}
	if CodeOf(errors.New("plain")) != Unknown {
		t.Error("expected plain errors to map to Unknown")
	}
	if IsCode(nil, Unknown) {
		t.Error("nil error carries no code")
	}
}
