package records

import (
	"context"
	"sort"
	"testing"
)

type mockRecordRepo struct {
	records map[int]*PatientRecord
}

func newMockRecordRepo() *mockRecordRepo {
	return &mockRecordRepo{records: make(map[int]*PatientRecord)}
}

func (m *mockRecordRepo) List(ctx context.Context) ([]*PatientRecord, error) {
	out := []*PatientRecord{}
	for _, r := range m.records {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordID < out[j].RecordID })
	return out, nil
}

func (m *mockRecordRepo) GetByID(ctx context.Context, id int) (*PatientRecord, error) {
	r, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockRecordRepo) Create(ctx context.Context, r *PatientRecord) error {
	max := 0
	for id := range m.records {
		if id > max {
			max = id
		}
	}
	r.RecordID = max + 1
	cp := *r
	m.records[r.RecordID] = &cp
	return nil
}

func (m *mockRecordRepo) Update(ctx context.Context, r *PatientRecord) error {
	if _, ok := m.records[r.RecordID]; !ok {
		return ErrNotFound
	}
	cp := *r
	m.records[r.RecordID] = &cp
	return nil
}

func (m *mockRecordRepo) Delete(ctx context.Context, id int) error {
	if _, ok := m.records[id]; !ok {
		return ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func TestCreateRecord_OptionalFollowUp(t *testing.T) {
	svc := NewService(newMockRecordRepo())

	r := &PatientRecord{PatientID: 1, VisitDate: "2024-11-28", Treatment: "ECG and blood panel"}
	if err := svc.Create(context.Background(), r); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if r.RecordID != 1 {
		t.Errorf("expected id 1, got %d", r.RecordID)
	}

	fu := "2024-12-12"
	r2 := &PatientRecord{PatientID: 1, VisitDate: "2024-11-29", Treatment: "Follow-up", FollowUpDate: &fu}
	if err := svc.Create(context.Background(), r2); err != nil {
		t.Fatalf("Create() with follow-up error: %v", err)
	}
	if r2.RecordID != 2 {
		t.Errorf("expected id 2, got %d", r2.RecordID)
	}
}

func TestCreateRecord_Validation(t *testing.T) {
	svc := NewService(newMockRecordRepo())
	bad := "next week"

	cases := []struct {
		name string
		rec  PatientRecord
	}{
		{"missing patient", PatientRecord{VisitDate: "2024-11-28", Treatment: "X"}},
		{"bad visit date", PatientRecord{PatientID: 1, VisitDate: "Nov 28", Treatment: "X"}},
		{"missing treatment", PatientRecord{PatientID: 1, VisitDate: "2024-11-28"}},
		{"bad follow-up", PatientRecord{PatientID: 1, VisitDate: "2024-11-28", Treatment: "X", FollowUpDate: &bad}},
	}
	for _, tc := range cases {
		r := tc.rec
		if err := svc.Create(context.Background(), &r); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestUpdateRecord_NotFound(t *testing.T) {
	svc := NewService(newMockRecordRepo())
	r := &PatientRecord{RecordID: 5, PatientID: 1, VisitDate: "2024-11-28", Treatment: "X"}
	if err := svc.Update(context.Background(), r); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
