package dbent

import (
	"errors"
	"testing"
)

func TestManyZeroValueIsEmpty(t *testing.T) {
	var m Many[string]
	if !m.IsEmpty() || m.IsLoaded() || m.IsNotFetched() {
		t.Error("zero Many is not empty")
	}
	if _, err := m.Data(); !errors.Is(err, ErrManyEmpty) {
		t.Errorf("Data() error = %v, want ErrManyEmpty", err)
	}
	if _, err := m.DataMut(); !errors.Is(err, ErrManyEmpty) {
		t.Errorf("DataMut() error = %v, want ErrManyEmpty", err)
	}
}

func TestNotFetchedMany(t *testing.T) {
	m := NotFetchedMany[string]()
	if !m.IsNotFetched() {
		t.Error("NotFetchedMany did not produce the not-fetched state")
	}
	if _, err := m.Data(); !errors.Is(err, ErrManyNotFetched) {
		t.Errorf("Data() error = %v, want ErrManyNotFetched", err)
	}
	if _, err := m.DataMut(); !errors.Is(err, ErrManyNotFetched) {
		t.Errorf("DataMut() error = %v, want ErrManyNotFetched", err)
	}
}

func TestNotFetchedDistinctFromEmpty(t *testing.T) {
	var empty Many[string]
	notFetched := NotFetchedMany[string]()

	_, emptyErr := empty.Data()
	_, notFetchedErr := notFetched.Data()
	if errors.Is(emptyErr, notFetchedErr) {
		t.Error("empty and not-fetched report the same error")
	}
}

func TestManyOfIdentity(t *testing.T) {
	items := []string{"one", "two", "three"}
	m := ManyOf(items)

	if !m.IsLoaded() {
		t.Error("ManyOf did not produce the loaded state")
	}
	got, err := m.Data()
	if err != nil {
		t.Fatalf("Data() error = %v", err)
	}
	if len(got) != 3 || got[0] != "one" || got[2] != "three" {
		t.Errorf("Data() = %v, want the sequence unchanged", got)
	}

	p, err := m.DataMut()
	if err != nil {
		t.Fatalf("DataMut() error = %v", err)
	}
	if len(*p) != 3 || (*p)[1] != "two" {
		t.Errorf("DataMut() = %v, want the sequence unchanged", *p)
	}
}

func TestManyDataMutReplace(t *testing.T) {
	m := ManyOf([]int{1, 2})
	p, err := m.DataMut()
	if err != nil {
		t.Fatalf("DataMut() error = %v", err)
	}
	*p = append(*p, 3)

	got, _ := m.Data()
	if len(got) != 3 || got[2] != 3 {
		t.Errorf("Data() after append = %v, want [1 2 3]", got)
	}
}

func TestManyStateReplacement(t *testing.T) {
	var m Many[int]

	m.SetNotFetched()
	if !m.IsNotFetched() {
		t.Error("SetNotFetched did not switch state")
	}

	m.SetData([]int{1})
	if !m.IsLoaded() {
		t.Error("SetData did not switch state")
	}

	m.SetEmpty()
	if !m.IsEmpty() {
		t.Error("SetEmpty did not switch state")
	}
}

func TestManyEqualClone(t *testing.T) {
	a := ManyOf([]int{1, 2})
	b := ManyOf([]int{1, 2})
	if !a.Equal(b) {
		t.Error("equal loaded sequences compare unequal")
	}
	if a.Equal(ManyOf([]int{1, 3})) {
		t.Error("different sequences compare equal")
	}
	if a.Equal(NotFetchedMany[int]()) {
		t.Error("loaded compares equal to not-fetched")
	}
	if !NotFetchedMany[int]().Equal(NotFetchedMany[int]()) {
		t.Error("two not-fetched references compare unequal")
	}

	clone := a.Clone()
	items, _ := clone.DataMut()
	(*items)[0] = 9
	orig, _ := a.Data()
	if orig[0] != 1 {
		t.Error("clone aliases the original's backing slice")
	}
}
