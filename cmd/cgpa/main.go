package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/aboderinsamuel/cgpaCalculator-for-University/internal/models"
	"github.com/aboderinsamuel/cgpaCalculator-for-University/internal/service"
	"github.com/aboderinsamuel/cgpaCalculator-for-University/pkg/config"
	appErrors "github.com/aboderinsamuel/cgpaCalculator-for-University/pkg/errors"
	"github.com/aboderinsamuel/cgpaCalculator-for-University/pkg/logger"
	"github.com/aboderinsamuel/cgpaCalculator-for-University/pkg/storage"
)

type app struct {
	session     *service.SessionService
	snapshots   *service.SnapshotService
	transcripts *service.TranscriptService
	input       *bufio.Scanner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	snapshotStore, err := storage.NewLocalStorage(cfg.Snapshots.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("snapshot storage unavailable", "error", err)
	}
	exportStore, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("export storage unavailable", "error", err)
	}

	session := service.NewSessionService(models.Scale(cfg.DefaultScale), logr)
	a := &app{
		session:   session,
		snapshots: service.NewSnapshotService(session, snapshotStore, logr),
		transcripts: service.NewTranscriptService(session, nil, exportStore, service.TranscriptConfig{
			InstitutionName: cfg.Institution.Name,
			FilenamePrefix:  cfg.Institution.TranscriptPrefix,
		}, logr),
		input: bufio.NewScanner(os.Stdin),
	}

	for {
		a.displayMenu()
		switch a.readLine() {
		case "1":
			a.listCourses()
		case "2":
			a.addCourse()
		case "3":
			a.editCourse()
		case "4":
			a.removeCourse()
		case "5":
			a.switchScale()
		case "6":
			a.showDuplicates()
		case "7":
			a.previewTranscript()
		case "8":
			a.exportTranscript()
		case "9":
			a.saveCourses()
		case "10":
			a.loadCourses()
		case "11":
			color.Green("Goodbye!")
			return
		default:
			color.Red("Invalid choice. Please try again.")
		}
	}
}

func (a *app) displayMenu() {
	aggregate := a.session.Aggregate()
	color.Cyan("\n=== University CGPA Calculator ===")
	fmt.Printf("Scale: %s    CGPA: %.2f (%s)\n\n", a.session.Scale(), aggregate.Average, aggregate.Classification)
	fmt.Println("1. View courses")
	fmt.Println("2. Add course")
	fmt.Println("3. Edit course")
	fmt.Println("4. Remove course")
	fmt.Println("5. Switch grading scale")
	fmt.Println("6. Check duplicate course codes")
	fmt.Println("7. Preview transcript")
	fmt.Println("8. Export transcript (PDF)")
	fmt.Println("9. Save courses")
	fmt.Println("10. Load courses")
	fmt.Println("11. Exit")
	fmt.Print("\nEnter your choice (1-11): ")
}

func (a *app) readLine() string {
	if a.input.Scan() {
		return strings.TrimSpace(a.input.Text())
	}
	return "11"
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	return a.readLine()
}

func (a *app) listCourses() {
	courses := a.session.Courses()
	if len(courses) == 0 {
		color.Yellow("No courses yet.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Course", "Grade", "Credits"})
	for i, course := range courses {
		grade := string(course.Grade)
		if grade == "" {
			grade = "-"
		}
		table.Append([]string{strconv.Itoa(i + 1), course.Code, grade, strconv.Itoa(course.CreditHours)})
	}
	table.Render()

	aggregate := a.session.Aggregate()
	fmt.Printf("CGPA: %.2f on the %s scale", aggregate.Average, aggregate.Scale)
	if aggregate.Scale == models.NativeScale {
		fmt.Printf(" (4.0 equivalent: %.2f)", aggregate.Equivalent)
	}
	fmt.Println()
}

func (a *app) addCourse() {
	course := a.session.AddCourse()
	if code := a.prompt("Course code: "); code != "" {
		a.must(a.session.UpdateCode(course.ID, code))
	}
	if grade := strings.ToUpper(a.prompt("Grade (A-F, blank if ungraded): ")); grade != "" {
		a.must(a.session.UpdateGrade(course.ID, models.Grade(grade)))
	}
	hours := models.ParseCreditHours(a.prompt("Credit hours (1-6): "))
	a.must(a.session.UpdateCreditHours(course.ID, hours))
	color.Green("Course added.")
}

func (a *app) editCourse() {
	course, ok := a.pickCourse()
	if !ok {
		return
	}
	switch a.prompt("Edit (1) code, (2) grade, (3) credit hours: ") {
	case "1":
		a.must(a.session.UpdateCode(course.ID, a.prompt("New code: ")))
	case "2":
		grade := strings.ToUpper(a.prompt("New grade (A-F, blank if ungraded): "))
		a.must(a.session.UpdateGrade(course.ID, models.Grade(grade)))
	case "3":
		hours := models.ParseCreditHours(a.prompt("New credit hours (1-6): "))
		a.must(a.session.UpdateCreditHours(course.ID, hours))
	default:
		color.Red("Unknown field.")
	}
}

func (a *app) removeCourse() {
	course, ok := a.pickCourse()
	if !ok {
		return
	}
	a.must(a.session.RemoveCourse(course.ID))
	color.Green("Course removed.")
}

func (a *app) pickCourse() (models.Course, bool) {
	courses := a.session.Courses()
	if len(courses) == 0 {
		color.Yellow("No courses yet.")
		return models.Course{}, false
	}
	a.listCourses()
	n, err := strconv.Atoi(a.prompt("Course number: "))
	if err != nil || n < 1 || n > len(courses) {
		color.Red("No such course.")
		return models.Course{}, false
	}
	return courses[n-1], true
}

func (a *app) switchScale() {
	next := a.session.Scale().Other()
	a.must(a.session.SetScale(next))
	color.Green("Now using the %s scale.", next)
}

func (a *app) showDuplicates() {
	duplicates := a.session.Duplicates()
	if len(duplicates) == 0 {
		color.Green("No duplicate course codes.")
		return
	}
	color.Yellow("Duplicate course codes: %s", strings.Join(duplicates, ", "))
}

func (a *app) previewTranscript() {
	if err := a.transcripts.Preview(os.Stdout); err != nil {
		color.Red(appErrors.FromError(err).Message)
	}
}

func (a *app) exportTranscript() {
	name, err := a.transcripts.Export()
	if err != nil {
		color.Red(appErrors.FromError(err).Message)
		return
	}
	color.Green("Transcript saved as %s", name)
}

func (a *app) saveCourses() {
	name, err := a.snapshots.Save()
	if err != nil {
		color.Red(appErrors.FromError(err).Message)
		return
	}
	color.Green("Courses saved as %s", name)
}

func (a *app) loadCourses() {
	filename := a.prompt("Snapshot file name: ")
	if filename == "" {
		return
	}
	if err := a.snapshots.Load(filename); err != nil {
		color.Red(appErrors.FromError(err).Message)
		return
	}
	color.Green("Loaded %d courses.", len(a.session.Courses()))
}

func (a *app) must(err error) {
	if err != nil {
		color.Red(appErrors.FromError(err).Message)
	}
}
