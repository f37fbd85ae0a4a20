package dbent

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestKeyMsgpackRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		key  Key[int64]
	}{
		{"unset", Key[int64]{}},
		{"set", NewKey(int64(42))},
		{"zero value set", NewKey(int64(0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := msgpack.Marshal(tt.key)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			var back Key[int64]
			if err := msgpack.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if back != tt.key {
				t.Errorf("round trip = %v, want %v", back, tt.key)
			}
		})
	}
}

func TestEntityMsgpackRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ref  Entity[int64, *author]
	}{
		{"empty", Entity[int64, *author]{}},
		{"by key", KeyEntity[*author](NewKey(int64(7)))},
		{"by unset key", KeyEntity[*author](Key[int64]{})},
		{"by value", EntityOf[int64](newAuthor(7, "Ada"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := msgpack.Marshal(tt.ref)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			var back Entity[int64, *author]
			if err := msgpack.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !back.Equal(tt.ref) {
				t.Errorf("round trip changed the state: got %+v", back)
			}
		})
	}
}

func TestEntityLabelMsgpackRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ref  EntityLabel[int64, *author, string]
	}{
		{"empty", EntityLabel[int64, *author, string]{}},
		{"by key and label", KeyEntityLabel[*author](NewKey(int64(7)), "Ada")},
		{"by value", EntityLabelOf[int64, string](newAuthor(7, "Ada"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := msgpack.Marshal(tt.ref)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			var back EntityLabel[int64, *author, string]
			if err := msgpack.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !back.Equal(tt.ref) {
				t.Errorf("round trip changed the state: got %+v", back)
			}
		})
	}
}

func TestManyMsgpackRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ref  Many[string]
	}{
		{"empty", Many[string]{}},
		{"not fetched", NotFetchedMany[string]()},
		{"loaded", ManyOf([]string{"a", "b"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := msgpack.Marshal(tt.ref)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			var back Many[string]
			if err := msgpack.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !back.Equal(tt.ref) {
				t.Errorf("round trip changed the state: got %+v", back)
			}
		})
	}
}

func TestTagMsgpackRoundTrip(t *testing.T) {
	tag := Tag{Key: "7", Label: "Ada"}
	data, err := msgpack.Marshal(tag)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var back Tag
	if err := msgpack.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != tag {
		t.Errorf("round trip = %+v, want %+v", back, tag)
	}
}
