// ocio - color space management for Go
// Copyright (C) 2026  The ocio Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ocio

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testTransform is a minimal Transform used to exercise ColorSpace.
type testTransform struct {
	Label  string
	Params []float64
	Dir    TransformDirection
}

func (t *testTransform) Direction() TransformDirection {
	return t.Dir
}

func (t *testTransform) SetDirection(dir TransformDirection) {
	t.Dir = dir
}

func (t *testTransform) EditableCopy() Transform {
	return &testTransform{
		Label:  t.Label,
		Params: append([]float64(nil), t.Params...),
		Dir:    t.Dir,
	}
}

func (t *testTransform) String() string {
	return fmt.Sprintf("<TestTransform label=%s, direction=%s>", t.Label, t.Dir)
}

var _ Transform = (*testTransform)(nil)

func newTest(label string) *testTransform {
	return &testTransform{Label: label, Params: []float64{1, 2, 3}, Dir: TransformDirForward}
}

func get(t *testing.T, cs *ColorSpace, dir ColorSpaceDirection) *testTransform {
	t.Helper()
	tr, err := cs.Transform(dir)
	if err != nil {
		t.Fatal(err)
	}
	if tr == nil {
		return nil
	}
	return tr.(*testTransform)
}

func specified(t *testing.T, cs *ColorSpace, dir ColorSpaceDirection) bool {
	t.Helper()
	ok, err := cs.IsTransformSpecified(dir)
	if err != nil {
		t.Fatal(err)
	}
	return ok
}

func TestNewColorSpace(t *testing.T) {
	cs := NewColorSpace()
	if cs.Name() != "" || cs.Family() != "" || cs.Description() != "" {
		t.Errorf("expected empty strings, got %q %q %q", cs.Name(), cs.Family(), cs.Description())
	}
	if cs.BitDepth() != BitDepthUnknown {
		t.Errorf("bit depth: got %v, want %v", cs.BitDepth(), BitDepthUnknown)
	}
	if cs.Allocation() != AllocationUniform {
		t.Errorf("allocation: got %v, want %v", cs.Allocation(), AllocationUniform)
	}
	if cs.IsData() {
		t.Error("new color space is data")
	}
	if cs.NumAllocationVars() != 0 {
		t.Errorf("unexpected allocation vars %v", cs.AllocationVars())
	}
	for _, dir := range []ColorSpaceDirection{DirToReference, DirFromReference} {
		if get(t, cs, dir) != nil {
			t.Errorf("%s: unexpected transform", dir)
		}
		if specified(t, cs, dir) {
			t.Errorf("%s: unexpectedly specified", dir)
		}
	}
}

func TestInferInverse(t *testing.T) {
	for _, dir := range []ColorSpaceDirection{DirToReference, DirFromReference} {
		t.Run(dir.String(), func(t *testing.T) {
			cs := NewColorSpace()
			orig := newTest("log")
			if err := cs.SetTransform(dir, orig); err != nil {
				t.Fatal(err)
			}

			if !specified(t, cs, dir) {
				t.Error("major direction not specified")
			}
			if specified(t, cs, dir.Opposite()) {
				t.Error("minor direction specified")
			}

			major := get(t, cs, dir)
			if d := cmp.Diff(orig, major); d != "" {
				t.Errorf("major transform (-want +got):\n%s", d)
			}

			want := orig.EditableCopy()
			want.SetDirection(TransformDirInverse)
			minor := get(t, cs, dir.Opposite())
			if d := cmp.Diff(want, Transform(minor)); d != "" {
				t.Errorf("minor transform (-want +got):\n%s", d)
			}
		})
	}
}

func TestInferInverseOfInverse(t *testing.T) {
	cs := NewColorSpace()
	tr := newTest("gamma")
	tr.SetDirection(TransformDirInverse)
	if err := cs.SetTransform(DirFromReference, tr); err != nil {
		t.Fatal(err)
	}
	if got := get(t, cs, DirToReference).Direction(); got != TransformDirForward {
		t.Errorf("inferred direction: got %v, want %v", got, TransformDirForward)
	}
}

func TestStoredTransformsAreCopies(t *testing.T) {
	cs := NewColorSpace()
	tr := newTest("a")
	if err := cs.SetTransform(DirToReference, tr); err != nil {
		t.Fatal(err)
	}

	tr.Label = "changed"
	tr.Params[0] = 100
	tr.SetDirection(TransformDirInverse)

	major := get(t, cs, DirToReference)
	minor := get(t, cs, DirFromReference)
	if major == tr || minor == tr || major == minor {
		t.Fatal("transforms are aliased")
	}
	if major.Label != "a" || major.Params[0] != 1 || major.Dir != TransformDirForward {
		t.Errorf("stored transform changed: %v", major)
	}
	if minor.Label != "a" || minor.Params[0] != 1 {
		t.Errorf("inferred transform changed: %v", minor)
	}
}

func TestBothSpecified(t *testing.T) {
	cs := NewColorSpace()
	t1 := newTest("t1")
	t2 := newTest("t2")
	if err := cs.SetTransform(DirToReference, t1); err != nil {
		t.Fatal(err)
	}
	if err := cs.SetTransform(DirFromReference, t2); err != nil {
		t.Fatal(err)
	}

	if !specified(t, cs, DirToReference) || !specified(t, cs, DirFromReference) {
		t.Fatal("both directions should be specified")
	}
	if d := cmp.Diff(t1, get(t, cs, DirToReference)); d != "" {
		t.Errorf("to reference (-want +got):\n%s", d)
	}
	if d := cmp.Diff(t2, get(t, cs, DirFromReference)); d != "" {
		t.Errorf("from reference (-want +got):\n%s", d)
	}

	// setting one direction again must not touch the other one
	t3 := newTest("t3")
	if err := cs.SetTransform(DirToReference, t3); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(t2, get(t, cs, DirFromReference)); d != "" {
		t.Errorf("from reference after reset (-want +got):\n%s", d)
	}
}

func TestClearInferred(t *testing.T) {
	cs := NewColorSpace()
	if err := cs.SetTransform(DirToReference, newTest("t")); err != nil {
		t.Fatal(err)
	}
	if err := cs.SetTransform(DirToReference, nil); err != nil {
		t.Fatal(err)
	}
	for _, dir := range []ColorSpaceDirection{DirToReference, DirFromReference} {
		if get(t, cs, dir) != nil {
			t.Errorf("%s: transform not cleared", dir)
		}
		if specified(t, cs, dir) {
			t.Errorf("%s: still specified", dir)
		}
	}
}

func TestClearKeepsSpecifiedMinor(t *testing.T) {
	cs := NewColorSpace()
	t1 := newTest("t1")
	t2 := newTest("t2")
	if err := cs.SetTransform(DirToReference, t1); err != nil {
		t.Fatal(err)
	}
	if err := cs.SetTransform(DirFromReference, t2); err != nil {
		t.Fatal(err)
	}
	if err := cs.SetTransform(DirToReference, nil); err != nil {
		t.Fatal(err)
	}

	if get(t, cs, DirToReference) != nil {
		t.Error("to reference not cleared")
	}
	if specified(t, cs, DirToReference) {
		t.Error("to reference still specified")
	}
	if d := cmp.Diff(t2, get(t, cs, DirFromReference)); d != "" {
		t.Errorf("from reference (-want +got):\n%s", d)
	}
	if !specified(t, cs, DirFromReference) {
		t.Error("from reference no longer specified")
	}
}

func TestSpecifyAfterInference(t *testing.T) {
	// An explicitly set transform replaces an inferred one, and from then
	// on the two directions are independent.
	cs := NewColorSpace()
	if err := cs.SetTransform(DirToReference, newTest("t1")); err != nil {
		t.Fatal(err)
	}
	t2 := newTest("t2")
	if err := cs.SetTransform(DirFromReference, t2); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(t2, get(t, cs, DirFromReference)); d != "" {
		t.Errorf("from reference (-want +got):\n%s", d)
	}
	if got := get(t, cs, DirToReference); got.Label != "t1" || got.Dir != TransformDirForward {
		t.Errorf("to reference changed: %v", got)
	}
}

func TestEditableTransform(t *testing.T) {
	cs := NewColorSpace()
	if err := cs.SetTransform(DirToReference, newTest("t")); err != nil {
		t.Fatal(err)
	}

	e, err := cs.EditableTransform(DirToReference)
	if err != nil {
		t.Fatal(err)
	}
	e.(*testTransform).Label = "edited"

	if got := get(t, cs, DirToReference).Label; got != "edited" {
		t.Errorf("in-place edit lost: got %q", got)
	}
	// no inference happens for in-place edits
	if got := get(t, cs, DirFromReference).Label; got != "t" {
		t.Errorf("minor transform changed: got %q", got)
	}

	e, err = cs.EditableTransform(DirFromReference)
	if err != nil {
		t.Fatal(err)
	}
	if e == nil {
		t.Fatal("missing inferred transform")
	}

	empty := NewColorSpace()
	e, err = empty.EditableTransform(DirFromReference)
	if err != nil {
		t.Fatal(err)
	}
	if e != nil {
		t.Errorf("unexpected transform %v", e)
	}
}

func TestEditableCopy(t *testing.T) {
	a := NewColorSpace()
	a.SetName("lnf")
	a.SetFamily("ln")
	a.SetDescription("linear float")
	a.SetBitDepth(BitDepthF32)
	a.SetIsData(true)
	a.SetAllocation(AllocationLG2)
	a.SetAllocationVars(-15, 6, 0.00390625)
	if err := a.SetTransform(DirFromReference, newTest("t")); err != nil {
		t.Fatal(err)
	}

	b := a.EditableCopy()
	if !ColorSpacesEqual(a, b) {
		t.Fatalf("copy differs:\n%s\n%s", a, b)
	}
	if d := cmp.Diff(a.AllocationVars(), b.AllocationVars()); d != "" {
		t.Errorf("allocation vars (-want +got):\n%s", d)
	}
	for _, dir := range []ColorSpaceDirection{DirToReference, DirFromReference} {
		if specified(t, a, dir) != specified(t, b, dir) {
			t.Errorf("%s: specified flag not copied", dir)
		}
	}

	e, err := b.EditableTransform(DirFromReference)
	if err != nil {
		t.Fatal(err)
	}
	e.(*testTransform).Label = "changed"
	e.(*testTransform).Params[1] = -1
	e.SetDirection(TransformDirInverse)

	got := get(t, a, DirFromReference)
	want := newTest("t")
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("original changed through copy (-want +got):\n%s", d)
	}

	b.SetAllocationVars(1, 2)
	if d := cmp.Diff([]float64{-15, 6, 0.00390625}, a.AllocationVars()); d != "" {
		t.Errorf("original allocation vars changed (-want +got):\n%s", d)
	}
	if ColorSpacesEqual(a, b) {
		t.Error("modified copy still equal")
	}
}

func TestEditableCopyEmpty(t *testing.T) {
	a := NewColorSpace()
	b := a.EditableCopy()
	if !ColorSpacesEqual(a, b) {
		t.Error("copy of empty color space differs")
	}
	if b.NumAllocationVars() != 0 {
		t.Error("unexpected allocation vars")
	}
}

func TestScalarRoundTrip(t *testing.T) {
	type testCase struct {
		name, family, description string
		bitDepth                  BitDepth
		isData                    bool
		allocation                Allocation
	}
	var cases []testCase
	for b := BitDepthUnknown; b <= BitDepthF32; b++ {
		for _, a := range []Allocation{AllocationUnknown, AllocationUniform, AllocationLG2} {
			for _, isData := range []bool{false, true} {
				cases = append(cases, testCase{
					name:        fmt.Sprintf("cs-%d-%d", b, a),
					family:      "Family " + b.String(),
					description: "δ " + a.String(),
					bitDepth:    b,
					isData:      isData,
					allocation:  a,
				})
			}
		}
	}

	for _, tc := range cases {
		cs := NewColorSpace()
		cs.SetName(tc.name)
		cs.SetFamily(tc.family)
		cs.SetDescription(tc.description)
		cs.SetBitDepth(tc.bitDepth)
		cs.SetIsData(tc.isData)
		cs.SetAllocation(tc.allocation)

		got := testCase{
			name:        cs.Name(),
			family:      cs.Family(),
			description: cs.Description(),
			bitDepth:    cs.BitDepth(),
			isData:      cs.IsData(),
			allocation:  cs.Allocation(),
		}
		if got != tc {
			t.Errorf("got %+v, want %+v", got, tc)
		}
	}
}

func TestAllocationVars(t *testing.T) {
	cs := NewColorSpace()

	in := []float64{0, 1, -2.5}
	cs.SetAllocationVars(in...)
	in[0] = 42
	if cs.NumAllocationVars() != 3 {
		t.Fatalf("got %d vars, want 3", cs.NumAllocationVars())
	}
	out := cs.AllocationVars()
	if d := cmp.Diff([]float64{0, 1, -2.5}, out); d != "" {
		t.Errorf("vars (-want +got):\n%s", d)
	}
	out[1] = 42
	if cs.AllocationVars()[1] != 1 {
		t.Error("returned slice aliases internal storage")
	}

	cs.SetAllocationVars()
	if cs.NumAllocationVars() != 0 || len(cs.AllocationVars()) != 0 {
		t.Errorf("vars not cleared: %v", cs.AllocationVars())
	}
}

func TestInvalidDirection(t *testing.T) {
	cs := NewColorSpace()
	cs.SetName("x")
	if err := cs.SetTransform(DirToReference, newTest("t")); err != nil {
		t.Fatal(err)
	}
	before := cs.EditableCopy()

	for _, dir := range []ColorSpaceDirection{DirUnknown, -1, 3, 99} {
		if _, err := cs.Transform(dir); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Transform(%d): got %v", dir, err)
		}
		if _, err := cs.EditableTransform(dir); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("EditableTransform(%d): got %v", dir, err)
		}
		if _, err := cs.IsTransformSpecified(dir); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("IsTransformSpecified(%d): got %v", dir, err)
		}
		if err := cs.SetTransform(dir, newTest("other")); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SetTransform(%d, t): got %v", dir, err)
		}
		if err := cs.SetTransform(dir, nil); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SetTransform(%d, nil): got %v", dir, err)
		}
	}

	if !ColorSpacesEqual(before, cs) {
		t.Errorf("state changed:\n%s\n%s", before, cs)
	}
}

func TestSetNilPointerTransform(t *testing.T) {
	cs := NewColorSpace()
	cs.SetName("x")
	if err := cs.SetTransform(DirFromReference, newTest("t")); err != nil {
		t.Fatal(err)
	}
	before := cs.EditableCopy()

	for _, dir := range []ColorSpaceDirection{DirToReference, DirFromReference} {
		var tr *testTransform
		err := cs.SetTransform(dir, tr)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: got %v, want invalid argument", dir, err)
		}
	}

	if !ColorSpacesEqual(before, cs) {
		t.Errorf("state changed:\n%s\n%s", before, cs)
	}
}

func TestString(t *testing.T) {
	cs := NewColorSpace()
	cs.SetName("lg10")
	cs.SetFamily("log")
	cs.SetBitDepth(BitDepthUInt10)

	want := "<ColorSpace name=lg10, family=log, bitDepth=10ui, isData=false, allocation=uniform, >\n"
	if got := cs.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// the inferred direction is not shown
	if err := cs.SetTransform(DirToReference, newTest("a")); err != nil {
		t.Fatal(err)
	}
	want1 := want + "\tlg10 --> Reference\n<TestTransform label=a, direction=forward>\n"
	if got := cs.String(); got != want1 {
		t.Errorf("got %q, want %q", got, want1)
	}

	if err := cs.SetTransform(DirFromReference, newTest("b")); err != nil {
		t.Fatal(err)
	}
	want2 := want1 + "\tReference --> lg10\n<TestTransform label=b, direction=forward>\n"
	if got := cs.String(); got != want2 {
		t.Errorf("got %q, want %q", got, want2)
	}
}

func TestColorSpacesEqual(t *testing.T) {
	a := NewColorSpace()
	b := NewColorSpace()
	if !ColorSpacesEqual(a, b) {
		t.Error("empty color spaces differ")
	}
	if ColorSpacesEqual(a, nil) || ColorSpacesEqual(nil, b) {
		t.Error("nil equals non-nil")
	}
	if !ColorSpacesEqual(nil, nil) {
		t.Error("nil differs from nil")
	}

	if err := a.SetTransform(DirToReference, newTest("t")); err != nil {
		t.Fatal(err)
	}
	if ColorSpacesEqual(a, b) {
		t.Error("transform ignored")
	}
	if err := b.SetTransform(DirToReference, newTest("t")); err != nil {
		t.Fatal(err)
	}
	if !ColorSpacesEqual(a, b) {
		t.Error("equal transforms differ")
	}

	// same transforms, different specified flags
	c := NewColorSpace()
	inv := newTest("t")
	inv.SetDirection(TransformDirInverse)
	if err := c.SetTransform(DirToReference, newTest("t")); err != nil {
		t.Fatal(err)
	}
	if err := c.SetTransform(DirFromReference, inv); err != nil {
		t.Fatal(err)
	}
	if ColorSpacesEqual(a, c) {
		t.Error("specified flags ignored")
	}
}
