package classroom

import "testing"

func TestClassroomScheduling(t *testing.T) {
	room := Classroom{ID: 1, Location: "Room 101", Capacity: 2, IsAvailable: true}

	if !room.ScheduleCourse(3) {
		t.Error("ScheduleCourse() should succeed on an open room")
	}
	if room.ScheduleCourse(3) {
		t.Error("ScheduleCourse() should reject a duplicate course")
	}
	if !room.ScheduleCourse(5) {
		t.Error("ScheduleCourse() should fill the last slot")
	}
	if !room.IsFull() {
		t.Error("IsFull() should be true at capacity")
	}
	if room.ScheduleCourse(7) {
		t.Error("ScheduleCourse() should reject when full")
	}

	if !room.UnscheduleCourse(3) {
		t.Error("UnscheduleCourse() should remove a scheduled course")
	}
	if room.UnscheduleCourse(3) {
		t.Error("UnscheduleCourse() should report a missing course")
	}
	if room.IsFull() {
		t.Error("IsFull() should be false after freeing a slot")
	}
}

func TestClassroomUnavailable(t *testing.T) {
	room := Classroom{ID: 1, Location: "Room 101", Capacity: 2}

	if room.ScheduleCourse(3) {
		t.Error("ScheduleCourse() should reject an unavailable room")
	}

	room.IsAvailable = true
	if !room.ScheduleCourse(3) {
		t.Error("ScheduleCourse() should succeed once available")
	}
}

func TestClassroomSetters(t *testing.T) {
	room := Classroom{ID: 1, Location: "Room 101", Capacity: 40}

	if room.SetCapacity(0) {
		t.Error("SetCapacity(0) should fail")
	}
	if room.SetCapacity(1001) {
		t.Error("SetCapacity(1001) should fail")
	}
	if room.Capacity != 40 {
		t.Errorf("failed SetCapacity() must keep the prior value, got %d", room.Capacity)
	}
	if !room.SetCapacity(60) {
		t.Error("SetCapacity(60) should succeed")
	}
}
