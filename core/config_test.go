package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("ENV")

	conf, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if conf.DataDir != "data" {
		t.Errorf("DataDir = %q, want %q", conf.DataDir, "data")
	}
	if conf.StudentsFile != "students.txt" {
		t.Errorf("StudentsFile = %q, want %q", conf.StudentsFile, "students.txt")
	}
	if conf.MaxCourseCapacity != 500 {
		t.Errorf("MaxCourseCapacity = %d, want 500", conf.MaxCourseCapacity)
	}
	if conf.MaxClassroomCapacity != 1000 {
		t.Errorf("MaxClassroomCapacity = %d, want 1000", conf.MaxClassroomCapacity)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	os.Setenv("ENV", "TEST")
	os.Setenv("TEST_DATADIR", "/tmp/shule-data")
	defer func() {
		os.Unsetenv("ENV")
		os.Unsetenv("TEST_DATADIR")
	}()

	conf, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if conf.DataDir != "/tmp/shule-data" {
		t.Errorf("DataDir = %q, want the env override", conf.DataDir)
	}
	if conf.Env != "TEST" {
		t.Errorf("Env = %q, want %q", conf.Env, "TEST")
	}
}

func TestConfigPaths(t *testing.T) {
	conf := Config{DataDir: "data", StudentsFile: "students.txt", CoursesFile: "courses.txt"}

	if got, want := conf.StudentsPath(), filepath.Join("data", "students.txt"); got != want {
		t.Errorf("StudentsPath() = %q, want %q", got, want)
	}
	if got, want := conf.CoursesPath(), filepath.Join("data", "courses.txt"); got != want {
		t.Errorf("CoursesPath() = %q, want %q", got, want)
	}
}
