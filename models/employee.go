package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"karyawan/common"
)

type Employee struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Salary  *float64 `json:"salary"`
	Title   string   `json:"title"`
}

// SalaryText renders Salary the way it is shown in forms: blank when unset,
// shortest decimal form otherwise.
func (e Employee) SalaryText() string {
	if e.Salary == nil {
		return ""
	}
	return strconv.FormatFloat(*e.Salary, 'f', -1, 64)
}

var decimalSalary = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Employee_input is the raw add/edit form submission.
type Employee_input struct {
	Name    string `form:"nama"`
	Address string `form:"alamat"`
	Salary  string `form:"gaji"`
	Title   string `form:"jabatan"`
}

// ToEmployee coerces the submission into an Employee. Text fields are kept
// exactly as submitted; a blank salary means no salary.
func (in Employee_input) ToEmployee() (Employee, error) {
	emp := Employee{
		Name:    in.Name,
		Address: in.Address,
		Title:   in.Title,
	}

	raw := strings.TrimSpace(in.Salary)
	if raw == "" {
		return emp, nil
	}

	if !decimalSalary.MatchString(raw) {
		return emp, fmt.Errorf("%w: %q", common.ErrInvalidSalary, in.Salary)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return emp, fmt.Errorf("%w: %q", common.ErrInvalidSalary, in.Salary)
	}
	emp.Salary = &v
	return emp, nil
}

// Input returns the form representation used to prefill the edit form.
func (e Employee) Input() Employee_input {
	return Employee_input{
		Name:    e.Name,
		Address: e.Address,
		Salary:  e.SalaryText(),
		Title:   e.Title,
	}
}
