package store

import (
	"testing"

	courseModels "scholarnest/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollCreatesPending(t *testing.T) {
	db := newTestDB(t)
	s := NewCourseStore(db)
	ledger := NewEnrollmentLedger(db)

	course := mustCreateCourse(t, s, "Intro to X")
	user := mustCreateUser(t, db, "student@example.com")

	enrollment, err := ledger.Enroll(user.ID, course.Slug)
	require.NoError(t, err)
	assert.Equal(t, courseModels.EnrollmentPending, enrollment.Status)
	assert.Equal(t, course.ID, enrollment.CourseID)
}

func TestEnrollDuplicateConflict(t *testing.T) {
	db := newTestDB(t)
	s := NewCourseStore(db)
	ledger := NewEnrollmentLedger(db)

	course := mustCreateCourse(t, s, "Intro to X")
	user := mustCreateUser(t, db, "student@example.com")

	first, err := ledger.Enroll(user.ID, course.Slug)
	require.NoError(t, err)

	// Second enroll conflicts whatever the status — also when referencing
	// the course by id instead of slug.
	_, err = ledger.Enroll(user.ID, course.Slug)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	_, err = ledger.SetStatus(first.ID, courseModels.EnrollmentRejected)
	require.NoError(t, err)
	_, err = ledger.Enroll(user.ID, course.Slug)
	require.ErrorAs(t, err, &conflict)

	// The existing record was not mutated back to pending.
	var stored courseModels.Enrollment
	require.NoError(t, db.First(&stored, first.ID).Error)
	assert.Equal(t, courseModels.EnrollmentRejected, stored.Status)

	var count int64
	db.Model(&courseModels.Enrollment{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestEnrollUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	ledger := NewEnrollmentLedger(db)
	user := mustCreateUser(t, db, "student@example.com")

	_, err := ledger.Enroll(user.ID, "no-such-course")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Course", notFound.Entity)
}

func TestSetStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	s := NewCourseStore(db)
	ledger := NewEnrollmentLedger(db)

	course := mustCreateCourse(t, s, "Intro to X")
	user := mustCreateUser(t, db, "student@example.com")
	enrollment, err := ledger.Enroll(user.ID, course.Slug)
	require.NoError(t, err)

	approved, err := ledger.SetStatus(enrollment.ID, courseModels.EnrollmentApproved)
	require.NoError(t, err)
	assert.Equal(t, courseModels.EnrollmentApproved, approved.Status)

	// An admin may still flip a decision between approved and rejected.
	rejected, err := ledger.SetStatus(enrollment.ID, courseModels.EnrollmentRejected)
	require.NoError(t, err)
	assert.Equal(t, courseModels.EnrollmentRejected, rejected.Status)

	// pending is never a destination.
	_, err = ledger.SetStatus(enrollment.ID, courseModels.EnrollmentPending)
	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)

	_, err = ledger.SetStatus(enrollment.ID, "nonsense")
	require.ErrorAs(t, err, &invalid)

	_, err = ledger.SetStatus(4242, courseModels.EnrollmentApproved)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCheckStatusSynthetic(t *testing.T) {
	db := newTestDB(t)
	s := NewCourseStore(db)
	ledger := NewEnrollmentLedger(db)

	course := mustCreateCourse(t, s, "Intro to X")
	user := mustCreateUser(t, db, "student@example.com")

	status, enrollment, err := ledger.CheckStatus(user.ID, course.Slug)
	require.NoError(t, err)
	assert.Equal(t, courseModels.EnrollmentNone, status)
	assert.Nil(t, enrollment)

	// A check is a read; it must not create a record.
	var count int64
	db.Model(&courseModels.Enrollment{}).Count(&count)
	assert.Zero(t, count)

	_, err = ledger.Enroll(user.ID, course.Slug)
	require.NoError(t, err)

	status, enrollment, err = ledger.CheckStatus(user.ID, course.Slug)
	require.NoError(t, err)
	assert.Equal(t, courseModels.EnrollmentPending, status)
	require.NotNil(t, enrollment)
}

func TestListAllJoinsSummaries(t *testing.T) {
	db := newTestDB(t)
	s := NewCourseStore(db)
	ledger := NewEnrollmentLedger(db)

	course := mustCreateCourse(t, s, "Intro to X")
	user := mustCreateUser(t, db, "student@example.com")
	_, err := ledger.Enroll(user.ID, course.Slug)
	require.NoError(t, err)

	all, err := ledger.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, user.Email, all[0].User.Email)
	assert.Empty(t, all[0].User.Password)
	assert.Equal(t, course.Title, all[0].Course.Title)
}

func TestListMine(t *testing.T) {
	db := newTestDB(t)
	s := NewCourseStore(db)
	ledger := NewEnrollmentLedger(db)

	courseA := mustCreateCourse(t, s, "Intro to X")
	courseB := mustCreateCourse(t, s, "Intro to Y")
	me := mustCreateUser(t, db, "me@example.com")
	other := mustCreateUser(t, db, "other@example.com")

	_, err := ledger.Enroll(me.ID, courseA.Slug)
	require.NoError(t, err)
	_, err = ledger.Enroll(other.ID, courseB.Slug)
	require.NoError(t, err)

	mine, err := ledger.ListMine(me.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, courseA.ID, mine[0].CourseID)
	assert.Equal(t, courseA.Title, mine[0].Course.Title)
}
