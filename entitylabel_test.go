package dbent

import (
	"errors"
	"testing"
)

func TestEntityLabelZeroValueIsEmpty(t *testing.T) {
	var ref EntityLabel[int64, *author, string]
	if !ref.IsEmpty() {
		t.Error("zero EntityLabel is not empty")
	}
	if _, err := ref.Key(); !errors.Is(err, ErrEntityLabelEmpty) {
		t.Errorf("Key() error = %v, want ErrEntityLabelEmpty", err)
	}
	if _, err := ref.Label(); !errors.Is(err, ErrEntityLabelEmpty) {
		t.Errorf("Label() error = %v, want ErrEntityLabelEmpty", err)
	}
	if _, err := ref.Data(); !errors.Is(err, ErrEntityLabelEmpty) {
		t.Errorf("Data() error = %v, want ErrEntityLabelEmpty", err)
	}
}

func TestKeyEntityLabel(t *testing.T) {
	k := NewKey(int64(4))
	ref := KeyEntityLabel[*author](k, "Ada")

	if !ref.IsByKeyLabel() {
		t.Error("KeyEntityLabel did not produce the by-key state")
	}
	key, err := ref.Key()
	if err != nil {
		t.Fatalf("Key() error = %v", err)
	}
	if *key != k {
		t.Errorf("Key() = %v, want the wrapped key verbatim", *key)
	}
	label, err := ref.Label()
	if err != nil {
		t.Fatalf("Label() error = %v", err)
	}
	if *label != "Ada" {
		t.Errorf("Label() = %q, want %q", *label, "Ada")
	}
	if _, err := ref.Data(); !errors.Is(err, ErrEntityLabelNotFetched) {
		t.Errorf("Data() error = %v, want ErrEntityLabelNotFetched", err)
	}
}

func TestEntityLabelOf(t *testing.T) {
	a := newAuthor(4, "Ada")
	ref := EntityLabelOf[int64, string](a)

	if !ref.IsByValue() {
		t.Error("EntityLabelOf did not produce the by-value state")
	}
	label, err := ref.Label()
	if err != nil {
		t.Fatalf("Label() error = %v", err)
	}
	if *label != "Ada" {
		t.Errorf("Label() = %q, want the record's own label", *label)
	}
	key, err := ref.Key()
	if err != nil {
		t.Fatalf("Key() error = %v", err)
	}
	if v, _ := key.Get(); v != 4 {
		t.Errorf("Key() = %v, want the record's own key", v)
	}
	rec, err := ref.Data()
	if err != nil {
		t.Fatalf("Data() error = %v", err)
	}
	if rec != a {
		t.Error("Data() does not return the owned record")
	}
}

func TestEntityLabelStateReplacement(t *testing.T) {
	var ref EntityLabelInt[*author]

	k := NewKey(int64(11))
	ref.SetKeyLabel(k, "Grace")
	label, err := ref.Label()
	if err != nil {
		t.Fatalf("Label() error = %v", err)
	}
	if *label != "Grace" {
		t.Errorf("Label() = %q, want %q", *label, "Grace")
	}
	key, err := ref.Key()
	if err != nil {
		t.Fatalf("Key() error = %v", err)
	}
	if *key != k {
		t.Errorf("Key() = %v, want %v", *key, k)
	}

	ref.SetEmpty()
	if _, err := ref.Key(); !errors.Is(err, ErrEntityLabelEmpty) {
		t.Errorf("Key() after SetEmpty error = %v, want ErrEntityLabelEmpty", err)
	}
	if _, err := ref.Label(); !errors.Is(err, ErrEntityLabelEmpty) {
		t.Errorf("Label() after SetEmpty error = %v, want ErrEntityLabelEmpty", err)
	}
}

func TestEntityLabelEqualClone(t *testing.T) {
	a := KeyEntityLabel[*author](NewKey(int64(1)), "Ada")
	b := KeyEntityLabel[*author](NewKey(int64(1)), "Ada")
	if !a.Equal(b) {
		t.Error("equal by-key references compare unequal")
	}

	c := KeyEntityLabel[*author](NewKey(int64(1)), "Grace")
	if a.Equal(c) {
		t.Error("references with different labels compare equal")
	}

	orig := EntityLabelOf[int64, string](newAuthor(2, "Ada"))
	clone := orig.Clone()
	rec, err := clone.Data()
	if err != nil {
		t.Fatalf("Data() error = %v", err)
	}
	rec.Name = "Grace"
	origRec, _ := orig.Data()
	if origRec.Name != "Ada" {
		t.Error("clone aliases the original's payload")
	}
}
