package controllers

import (
	"errors"

	"karyawan/common"
	"karyawan/models"
	"karyawan/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	msgCreated       = "Karyawan berhasil ditambahkan!"
	msgUpdated       = "Data karyawan berhasil diperbarui!"
	msgDeleted       = "Karyawan berhasil dihapus!"
	msgInvalidSalary = "Gaji harus berupa angka."

	listPath = "/karyawan"
)

func (h *Handler) GetEmployees(c *fiber.Ctx) error {
	employees, err := h.employees.List(c.UserContext())
	if err != nil {
		return err
	}
	return h.render(c, fiber.StatusOK, "karyawan", fiber.Map{
		"Title":     "Daftar Karyawan",
		"Employees": employees,
	})
}

func (h *Handler) NewEmployeeForm(c *fiber.Ctx) error {
	return h.renderForm(c, fiber.StatusOK, "/karyawan/tambah", models.Employee_input{}, nil)
}

func (h *Handler) CreateEmployee(c *fiber.Ctx) error {
	var in models.Employee_input
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}

	emp, err := in.ToEmployee()
	if err != nil {
		return h.invalidForm(c, "/karyawan/tambah", in, err, nil)
	}

	created, err := h.employees.Create(c.UserContext(), &emp)
	if err != nil {
		return err
	}

	h.log.Info(c.UserContext(), "employee created", "id", created.ID)
	return h.redirectWithFlash(c, listPath, "success", msgCreated)
}

func (h *Handler) EditEmployeeForm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	emp, err := h.employees.GetByID(c.UserContext(), int64(id))
	if err != nil {
		return notFoundOr(err)
	}
	return h.renderForm(c, fiber.StatusOK, c.Path(), emp.Input(), emp)
}

// UpdateEmployee overwrites all four fields with the submitted values,
// blanks included.
func (h *Handler) UpdateEmployee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	current, err := h.employees.GetByID(c.UserContext(), int64(id))
	if err != nil {
		return notFoundOr(err)
	}

	var in models.Employee_input
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}

	emp, err := in.ToEmployee()
	if err != nil {
		return h.invalidForm(c, c.Path(), in, err, current)
	}
	emp.ID = current.ID

	if err := h.employees.Update(c.UserContext(), &emp); err != nil {
		return notFoundOr(err)
	}

	h.log.Info(c.UserContext(), "employee updated", "id", emp.ID)
	return h.redirectWithFlash(c, listPath, "success", msgUpdated)
}

func (h *Handler) DeleteEmployee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := h.employees.Delete(c.UserContext(), int64(id)); err != nil {
		return notFoundOr(err)
	}

	h.log.Info(c.UserContext(), "employee deleted", "id", id)
	return h.redirectWithFlash(c, listPath, "success", msgDeleted)
}

func (h *Handler) renderForm(c *fiber.Ctx, status int, action string, form models.Employee_input, emp *models.Employee, flash ...*utils.Flash) error {
	title := "Tambah Karyawan"
	if emp != nil {
		title = "Edit Karyawan"
	}
	data := fiber.Map{
		"Title":    title,
		"Action":   action,
		"Form":     form,
		"Employee": emp,
	}
	if len(flash) > 0 {
		data["Flash"] = flash[0]
	}
	return h.render(c, status, "form", data)
}

func (h *Handler) invalidForm(c *fiber.Ctx, action string, in models.Employee_input, cause error, emp *models.Employee) error {
	h.log.Warn(c.UserContext(), "employee form rejected", "error", cause)
	return h.renderForm(c, fiber.StatusBadRequest, action, in, emp,
		&utils.Flash{Category: "danger", Message: msgInvalidSalary})
}

func notFoundOr(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return fiber.ErrNotFound
	}
	return err
}
