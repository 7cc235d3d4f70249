package admission

import (
	"context"
	"sort"
	"testing"
)

type mockAdmissionRepo struct {
	admissions map[int]*Admission
}

func newMockAdmissionRepo() *mockAdmissionRepo {
	return &mockAdmissionRepo{admissions: make(map[int]*Admission)}
}

func (m *mockAdmissionRepo) List(ctx context.Context) ([]*Admission, error) {
	out := []*Admission{}
	for _, a := range m.admissions {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AdmissionID < out[j].AdmissionID })
	return out, nil
}

func (m *mockAdmissionRepo) GetByID(ctx context.Context, id int) (*Admission, error) {
	a, ok := m.admissions[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockAdmissionRepo) Create(ctx context.Context, a *Admission) error {
	max := 0
	for id := range m.admissions {
		if id > max {
			max = id
		}
	}
	a.AdmissionID = max + 1
	cp := *a
	m.admissions[a.AdmissionID] = &cp
	return nil
}

func (m *mockAdmissionRepo) Update(ctx context.Context, a *Admission) error {
	if _, ok := m.admissions[a.AdmissionID]; !ok {
		return ErrNotFound
	}
	cp := *a
	m.admissions[a.AdmissionID] = &cp
	return nil
}

func (m *mockAdmissionRepo) Delete(ctx context.Context, id int) error {
	if _, ok := m.admissions[id]; !ok {
		return ErrNotFound
	}
	delete(m.admissions, id)
	return nil
}

type mockRoomRepo struct {
	rooms map[int]*Room
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[int]*Room)}
}

func (m *mockRoomRepo) List(ctx context.Context) ([]*Room, error) {
	out := []*Room{}
	for _, r := range m.rooms {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomID < out[j].RoomID })
	return out, nil
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id int) (*Room, error) {
	r, ok := m.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockRoomRepo) Create(ctx context.Context, r *Room) error {
	max := 0
	for id := range m.rooms {
		if id > max {
			max = id
		}
	}
	r.RoomID = max + 1
	cp := *r
	m.rooms[r.RoomID] = &cp
	return nil
}

func (m *mockRoomRepo) Update(ctx context.Context, r *Room) error {
	if _, ok := m.rooms[r.RoomID]; !ok {
		return ErrNotFound
	}
	cp := *r
	m.rooms[r.RoomID] = &cp
	return nil
}

func (m *mockRoomRepo) Delete(ctx context.Context, id int) error {
	if _, ok := m.rooms[id]; !ok {
		return ErrNotFound
	}
	delete(m.rooms, id)
	return nil
}

type mockBedRepo struct {
	beds []*Bed
}

func (m *mockBedRepo) List(ctx context.Context) ([]*Bed, error) {
	out := []*Bed{}
	for _, b := range m.beds {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func newTestService() (*Service, *mockAdmissionRepo, *mockRoomRepo, *mockBedRepo) {
	admissions := newMockAdmissionRepo()
	rooms := newMockRoomRepo()
	beds := &mockBedRepo{}
	return NewService(admissions, rooms, beds), admissions, rooms, beds
}

func TestCreateAdmission_RequiresExistingRoom(t *testing.T) {
	svc, _, rooms, _ := newTestService()
	rooms.rooms[1] = &Room{RoomID: 1, RoomType: "General Ward", Capacity: 4}

	a := &Admission{PatientID: 1, RoomID: 2, AdmissionDate: "2024-11-28"}
	if err := svc.CreateAdmission(context.Background(), a); err == nil {
		t.Error("expected error for unknown room")
	}

	a.RoomID = 1
	if err := svc.CreateAdmission(context.Background(), a); err != nil {
		t.Fatalf("CreateAdmission() error: %v", err)
	}
	if a.AdmissionID != 1 {
		t.Errorf("expected id 1, got %d", a.AdmissionID)
	}
}

func TestCreateAdmission_Validation(t *testing.T) {
	svc, _, rooms, _ := newTestService()
	rooms.rooms[1] = &Room{RoomID: 1, RoomType: "ICU", Capacity: 2}

	cases := []struct {
		name string
		adm  Admission
	}{
		{"missing patient", Admission{RoomID: 1, AdmissionDate: "2024-11-28"}},
		{"missing room", Admission{PatientID: 1, AdmissionDate: "2024-11-28"}},
		{"bad date", Admission{PatientID: 1, RoomID: 1, AdmissionDate: "Nov 28"}},
	}
	for _, tc := range cases {
		a := tc.adm
		if err := svc.CreateAdmission(context.Background(), &a); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestCreateRoom_OccupancyBounds(t *testing.T) {
	svc, _, _, _ := newTestService()

	if err := svc.CreateRoom(context.Background(), &Room{RoomType: "ICU", Capacity: 2, Occupancy: 3}); err == nil {
		t.Error("expected error for occupancy above capacity")
	}
	if err := svc.CreateRoom(context.Background(), &Room{RoomType: "ICU", Capacity: 2, Occupancy: 1, RoomsAvailable: 1}); err != nil {
		t.Fatalf("CreateRoom() error: %v", err)
	}
}

func TestListBeds(t *testing.T) {
	svc, _, _, beds := newTestService()
	pid := 1
	beds.beds = []*Bed{
		{BedID: 1, RoomID: 1, BedNumber: 1, PatientID: &pid},
		{BedID: 2, RoomID: 1, BedNumber: 2},
	}

	got, err := svc.ListBeds(context.Background())
	if err != nil {
		t.Fatalf("ListBeds() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 beds, got %d", len(got))
	}
	if got[0].PatientID == nil || *got[0].PatientID != 1 {
		t.Errorf("expected bed 1 occupied by patient 1, got %+v", got[0])
	}
	if got[1].PatientID != nil {
		t.Errorf("expected bed 2 vacant, got %+v", got[1])
	}
}
