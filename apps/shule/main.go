package main

import (
	"log"
	"os"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/classroom"
	"github.com/trezcool/shule/core/course"
	"github.com/trezcool/shule/core/registrar"
	"github.com/trezcool/shule/core/student"
	"github.com/trezcool/shule/core/teacher"
	logsvc "github.com/trezcool/shule/services/logger"
	"github.com/trezcool/shule/storage/textdb"
)

func main() {
	std := log.New(os.Stdout, "SHULE : ", log.LstdFlags)

	conf, err := core.LoadConfig()
	if err != nil {
		std.Printf("error: loading configuration: %v\n", err)
		os.Exit(1)
	}

	var logger core.Logger
	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, conf)
	} else {
		logger = logsvc.NewConsoleLogger(std, conf)
	}

	// set up DB; an unreadable store is the only unrecoverable startup error
	// (a missing file is not; it just means an empty collection)
	db, err := textdb.Open(conf, logger)
	if err != nil {
		if core.IsShutdown(err) {
			logger.Fatal("opening storage", err) // exits 1
		}
		logger.Error("opening storage", err)
		os.Exit(1)
	}

	studentRepo := textdb.NewStudentRepository(db)
	teacherRepo := textdb.NewTeacherRepository(db)
	courseRepo := textdb.NewCourseRepository(db)
	classroomRepo := textdb.NewClassroomRepository(db)

	cli := &commandLine{
		in:         os.Stdin,
		out:        os.Stdout,
		conf:       conf,
		log:        logger,
		db:         db,
		students:   student.NewService(studentRepo),
		teachers:   teacher.NewService(teacherRepo),
		courses:    course.NewService(courseRepo),
		classrooms: classroom.NewService(classroomRepo),
		registrar:  registrar.NewService(studentRepo, teacherRepo, courseRepo, classroomRepo, logger),
	}
	cli.run()

	// full resync on exit; the files end up reflecting exactly the
	// in-memory state regardless of interactive appends along the way
	if err := db.SaveAll(); err != nil {
		logger.Error("saving data", err)
		os.Exit(1)
	}
	if err := db.Backup(); err != nil {
		logger.Warn("backup failed", err)
	}
}
