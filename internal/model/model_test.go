package model

import (
	"encoding/json"
	"testing"

	"github.com/Nishaantmazarallo/Mini-project/internal/errs"
	"github.com/Nishaantmazarallo/Mini-project/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStudent() *CreateStudent {
	return &CreateStudent{
		Name:  "Asha Rao",
		Age:   9,
		Email: "asha@example.com",
		Phone: "+91 98765 43210",
		Level: LevelBeginner,
	}
}

func TestCreateStudentValidate(t *testing.T) {
	require.NoError(t, validation.Check(validStudent()))

	tooOld := validStudent()
	tooOld.Age = 19
	err := validation.Check(tooOld)
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	var appErr *errs.Error
	require.ErrorAs(t, err, &appErr)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "age", appErr.Errors[0].Field)
	assert.Equal(t, "must be less than or equal to 18", appErr.Errors[0].Error)

	badLevel := validStudent()
	badLevel.Level = "expert"
	require.ErrorIs(t, validation.Check(badLevel), errs.ErrInvalidInput)

	badStatus := validStudent()
	badStatus.Status = "graduated"
	require.ErrorIs(t, validation.Check(badStatus), errs.ErrInvalidInput)
}

func TestCreateStudentStatusDefault(t *testing.T) {
	in := validStudent()
	assert.Equal(t, StudentStatusPending, in.StatusOrDefault())
	in.Status = StudentStatusActive
	assert.Equal(t, StudentStatusActive, in.StatusOrDefault())
}

func TestCreateUserValidate(t *testing.T) {
	in := &CreateUser{Email: "a@b.co", Password: "secret1", Name: "Ann"}
	require.NoError(t, validation.Check(in))
	assert.Equal(t, RoleStudent, in.RoleOrDefault())

	in.Role = "superuser"
	require.ErrorIs(t, validation.Check(in), errs.ErrInvalidInput)

	missing := &CreateUser{Name: "Ann"}
	err := validation.Check(missing)
	var appErr *errs.Error
	require.ErrorAs(t, err, &appErr)
	assert.Len(t, appErr.Errors, 2)
}

func TestCourseValidatePrice(t *testing.T) {
	price := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	tests := []struct {
		name    string
		price   *decimal.Decimal
		wantErr bool
	}{
		{name: "omitted", price: nil},
		{name: "whole", price: price("1500")},
		{name: "cents", price: price("99.95")},
		{name: "negative", price: price("-1"), wantErr: true},
		{name: "too precise", price: price("1.005"), wantErr: true},
		{name: "too large", price: price("100000000"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &CreateCourse{Title: "Abacus I", Category: ProgramAbacus, Level: LevelBeginner, Price: tt.price}
			err := validation.Check(in)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUpdateValidateSkipsOmittedFields(t *testing.T) {
	require.NoError(t, validation.Check(&UpdateStudent{}))
	require.NoError(t, validation.Check(&UpdateCourse{}))
	require.NoError(t, validation.Check(&UpdateTestimonial{}))

	zero := 0
	require.ErrorIs(t, validation.Check(&UpdateTestimonial{Rating: &zero}), errs.ErrInvalidInput)
}

func TestCreateContactInquiryProgram(t *testing.T) {
	program := "robotics"
	in := &CreateContactInquiry{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Program: &program,
		Message: "Please tell me more about the classes.",
	}
	require.ErrorIs(t, validation.Check(in), errs.ErrInvalidInput)

	program = ProgramCompetition
	require.NoError(t, validation.Check(in))
	assert.Equal(t, InquiryStatusNew, in.StatusOrDefault())
}

func TestDecodeFlagFields(t *testing.T) {
	for _, raw := range []string{`false`, `"false"`, `0`} {
		var course UpdateCourse
		require.NoError(t, json.Unmarshal([]byte(`{"is_active":`+raw+`}`), &course), raw)
		require.NotNil(t, course.IsActive, raw)
		assert.False(t, bool(*course.IsActive), raw)

		var image CreateGalleryImage
		require.NoError(t, json.Unmarshal([]byte(`{"is_active":`+raw+`}`), &image), raw)
		assert.False(t, bool(*image.IsActive), raw)
	}

	var tm CreateTestimonial
	require.NoError(t, json.Unmarshal([]byte(`{"is_approved":"1"}`), &tm))
	assert.True(t, bool(*tm.IsApproved))

	require.Error(t, json.Unmarshal([]byte(`{"is_approved":"perhaps"}`), &tm))
}

func TestDecodeNullableFields(t *testing.T) {
	var in UpdateStudent
	require.NoError(t, json.Unmarshal([]byte(`{"notes":null,"address":"12 Park Road"}`), &in))

	assert.True(t, in.Notes.Set)
	assert.Nil(t, in.Notes.Value)
	require.NotNil(t, in.Address.Value)
	assert.Equal(t, "12 Park Road", *in.Address.Value)
	assert.False(t, in.ParentName.Set)
	require.NoError(t, validation.Check(&in))
}
