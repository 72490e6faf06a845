package textdb

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/student"
)

type testLogger struct {
	t     *testing.T
	warns *[]string
}

func (l testLogger) Debug(msg string, args ...interface{}) {}
func (l testLogger) Info(msg string, args ...interface{})  {}
func (l testLogger) Warn(msg string, args ...interface{}) {
	*l.warns = append(*l.warns, msg)
	l.t.Logf("WARN: %s", msg)
}
func (l testLogger) Error(msg string, args ...interface{}) { l.t.Logf("ERROR: %s", msg) }
func (l testLogger) Fatal(msg string, args ...interface{}) { l.t.Fatalf("FATAL: %s", msg) }

func testConfig(t *testing.T) *core.Config {
	return &core.Config{
		DataDir:        t.TempDir(),
		BackupDir:      filepath.Join(t.TempDir(), "backups"),
		StudentsFile:   "students.txt",
		TeachersFile:   "teachers.txt",
		CoursesFile:    "courses.txt",
		ClassroomsFile: "classrooms.txt",
	}
}

func setup(t *testing.T) (*DB, *[]string) {
	warns := new([]string)
	db, err := Open(testConfig(t), testLogger{t: t, warns: warns})
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return db, warns
}

func createStudent(t *testing.T, repo student.Repository, id int, name string) student.Student {
	std, err := repo.CreateStudent(student.Student{
		ID:             id,
		Name:           name,
		Age:            20,
		EnrollmentDate: "2026-01-15",
		IsActive:       true,
	})
	if err != nil {
		t.Fatalf("createStudent() failed: %v", err)
	}
	return std
}

func TestOpenWithMissingFiles(t *testing.T) {
	db, warns := setup(t)

	students, err := NewStudentRepository(db).QueryAllStudents()
	assert.NoError(t, err)
	assert.Empty(t, students)
	assert.Empty(t, *warns, "a missing file must not produce warnings")
}

func TestOpenUnreadableStore(t *testing.T) {
	conf := testConfig(t)
	// occupy the data dir path with a regular file so it cannot be created
	conf.DataDir = filepath.Join(conf.DataDir, "blocked")
	if err := ioutil.WriteFile(conf.DataDir, []byte("x"), 0o644); err != nil {
		t.Fatalf("blocking the data dir failed: %v", err)
	}

	_, err := Open(conf, testLogger{t: t, warns: new([]string)})
	assert.Error(t, err)
	assert.True(t, core.IsShutdown(err), "an unreadable store must surface as a shutdown error")
}

func TestCreateAssignsNextFreeID(t *testing.T) {
	db, _ := setup(t)
	repo := NewStudentRepository(db)

	std1 := createStudent(t, repo, 0, "Neema Juma")
	assert.Equal(t, 1, std1.ID)

	createStudent(t, repo, 5, "Amani Hassan")
	std3 := createStudent(t, repo, 0, "Baraka Otieno")
	assert.Equal(t, 6, std3.ID)
}

func TestCreateStopsAtIDRangeCeiling(t *testing.T) {
	db, _ := setup(t)
	repo := NewStudentRepository(db)
	createStudent(t, repo, 999999, "Neema Juma")

	_, err := repo.CreateStudent(student.Student{Name: "Amani Hassan", Age: 20})
	assert.Equal(t, ErrIDSpaceExhausted, err)

	students, err := repo.QueryAllStudents()
	assert.NoError(t, err)
	assert.Len(t, students, 1, "a rejected create must not insert")
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	db, _ := setup(t)
	repo := NewStudentRepository(db)

	createStudent(t, repo, 3, "Neema Juma")
	_, err := repo.CreateStudent(student.Student{ID: 3, Name: "Impostor", Age: 20})
	assert.Equal(t, student.ErrIDExists, err)
}

func TestGetStudentByIDNotFound(t *testing.T) {
	db, _ := setup(t)
	repo := NewStudentRepository(db)

	_, err := repo.GetStudentByID(42)
	assert.Equal(t, student.ErrNotFound, err)
}

func TestFilterStudents(t *testing.T) {
	db, _ := setup(t)
	repo := NewStudentRepository(db)
	createStudent(t, repo, 0, "Neema Juma")
	createStudent(t, repo, 0, "Amani Hassan")

	found, err := repo.FilterStudents(student.QueryFilter{Search: "NEE"})
	assert.NoError(t, err)
	if assert.Len(t, found, 1) {
		assert.Equal(t, "Neema Juma", found[0].Name)
	}

	none, err := repo.FilterStudents(student.QueryFilter{Search: "zzz"})
	assert.NoError(t, err)
	assert.NotNil(t, none, "no match must yield an empty list, not nil")
	assert.Empty(t, none)
}

func TestCreateAppendsOneLine(t *testing.T) {
	db, _ := setup(t)
	repo := NewStudentRepository(db)

	createStudent(t, repo, 0, "Neema Juma")
	assert.Equal(t, 1, countLines(t, db.conf.StudentsPath()))
	createStudent(t, repo, 0, "Amani Hassan")
	assert.Equal(t, 2, countLines(t, db.conf.StudentsPath()))
}

func TestSaveAllIsFullResync(t *testing.T) {
	db, _ := setup(t)
	repo := NewStudentRepository(db)
	createStudent(t, repo, 0, "Neema Juma")
	createStudent(t, repo, 0, "Amani Hassan")
	assert.NoError(t, db.SaveAll())

	// mutate in-memory state, resync again: the file must reflect exactly
	// the current record count, not the union of old and new
	assert.NoError(t, repo.DeleteStudentsByID(1))
	assert.NoError(t, db.SaveAll())
	assert.Equal(t, 1, countLines(t, db.conf.StudentsPath()))

	assert.NoError(t, db.LoadAll())
	students, err := repo.QueryAllStudents()
	assert.NoError(t, err)
	if assert.Len(t, students, 1) {
		assert.Equal(t, "Amani Hassan", students[0].Name)
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	conf := testConfig(t)
	lines := []string{
		"1|Neema Juma|20|neema@shule.ac.tz|0712345678|12 Uhuru St|2026-01-15|1|2,3",
		"short|line",
		"oops|Bad Id|20||||2026-01-15|1|",
		"2|Amani Hassan|22||||2026-01-15|0|",
	}
	writeFile(t, filepath.Join(conf.DataDir, conf.StudentsFile), lines)

	warns := new([]string)
	db, err := Open(conf, testLogger{t: t, warns: warns})
	assert.NoError(t, err, "one bad line must never abort the load")

	students, err := NewStudentRepository(db).QueryAllStudents()
	assert.NoError(t, err)
	assert.Len(t, students, 2, "want exactly the decodable records")
	assert.Len(t, *warns, 2, "each skipped line must surface a warning")
}

func TestBackupCopiesDataFiles(t *testing.T) {
	db, _ := setup(t)
	createStudent(t, NewStudentRepository(db), 0, "Neema Juma")
	assert.NoError(t, db.SaveAll())
	assert.NoError(t, db.Backup())

	entries, err := ioutil.ReadDir(db.conf.BackupDir)
	assert.NoError(t, err)
	if assert.Len(t, entries, 1) {
		backed, err := ioutil.ReadFile(filepath.Join(db.conf.BackupDir, entries[0].Name(), db.conf.StudentsFile))
		assert.NoError(t, err)
		orig, err := ioutil.ReadFile(db.conf.StudentsPath())
		assert.NoError(t, err)
		assert.Equal(t, orig, backed, "backup must be byte-identical")
	}
}

func countLines(t *testing.T, path string) int {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatalf("countLines(%s) failed: %v", path, err)
	}
	return len(strings.Split(strings.TrimRight(string(data), "\n"), "\n"))
}

func writeFile(t *testing.T, path string, lines []string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("writeFile(%s) failed: %v", path, err)
	}
	if err := ioutil.WriteFile(path, []byte(fmt.Sprintf("%s\n", strings.Join(lines, "\n"))), 0o644); err != nil {
		t.Fatalf("writeFile(%s) failed: %v", path, err)
	}
}
