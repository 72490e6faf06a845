package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all process-wide settings. It is built once at startup by
// LoadConfig and passed explicitly to the components that need it.
type Config struct {
	Debug   bool
	AppName string
	Env     string // DEV (default), TEST, QA, PROD

	// storage
	DataDir        string
	BackupDir      string
	StudentsFile   string
	TeachersFile   string
	CoursesFile    string
	ClassroomsFile string

	// limits
	MaxCourseCapacity    int
	MaxClassroomCapacity int

	RollbarToken string
}

// LoadConfig reads defaults, an optional .env file and the environment
// (prefixed with Env, e.g. DEV_DATADIR) into a Config.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Shule")
	v.SetDefault("dataDir", "data")
	v.SetDefault("backupDir", "backups")
	v.SetDefault("studentsFile", "students.txt")
	v.SetDefault("teachersFile", "teachers.txt")
	v.SetDefault("coursesFile", "courses.txt")
	v.SetDefault("classroomsFile", "classrooms.txt")
	v.SetDefault("maxCourseCapacity", 500)
	v.SetDefault("maxClassroomCapacity", 1000)
	v.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	v.AutomaticEnv()

	return &Config{
		Debug:                v.GetBool("debug"),
		AppName:              v.GetString("appName"),
		Env:                  env,
		DataDir:              v.GetString("dataDir"),
		BackupDir:            v.GetString("backupDir"),
		StudentsFile:         v.GetString("studentsFile"),
		TeachersFile:         v.GetString("teachersFile"),
		CoursesFile:          v.GetString("coursesFile"),
		ClassroomsFile:       v.GetString("classroomsFile"),
		MaxCourseCapacity:    v.GetInt("maxCourseCapacity"),
		MaxClassroomCapacity: v.GetInt("maxClassroomCapacity"),
		RollbarToken:         v.GetString("rollbarToken"),
	}, nil
}

func (c *Config) StudentsPath() string   { return filepath.Join(c.DataDir, c.StudentsFile) }
func (c *Config) TeachersPath() string   { return filepath.Join(c.DataDir, c.TeachersFile) }
func (c *Config) CoursesPath() string    { return filepath.Join(c.DataDir, c.CoursesFile) }
func (c *Config) ClassroomsPath() string { return filepath.Join(c.DataDir, c.ClassroomsFile) }
