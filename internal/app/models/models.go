package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin     RoleType = "ADMIN"
	RoleStudent   RoleType = "STUDENT"
	RoleRecruiter RoleType = "RECRUITER"
)

// School represents one of the three HACA schools
type School string

const (
	SchoolCoding    School = "Coding"
	SchoolMarketing School = "Marketing"
	SchoolDesign    School = "Design"
)

// Schools lists every valid school value
var Schools = []School{SchoolCoding, SchoolMarketing, SchoolDesign}

// IsValid reports whether the school is one of the known values
func (s School) IsValid() bool {
	for _, known := range Schools {
		if s == known {
			return true
		}
	}
	return false
}

// Batch represents a cohort code within a school
type Batch string

// Batch constants, prefixed by school (C=Coding, M=Marketing, D=Design)
const (
	BatchC1 Batch = "C1"
	BatchC2 Batch = "C2"
	BatchC3 Batch = "C3"
	BatchC4 Batch = "C4"
	BatchM1 Batch = "M1"
	BatchM2 Batch = "M2"
	BatchM3 Batch = "M3"
	BatchD1 Batch = "D1"
	BatchD2 Batch = "D2"
	BatchD3 Batch = "D3"
)

// Batches lists every valid batch code
var Batches = []Batch{
	BatchC1, BatchC2, BatchC3, BatchC4,
	BatchM1, BatchM2, BatchM3,
	BatchD1, BatchD2, BatchD3,
}

// IsValid reports whether the batch is one of the known codes
func (b Batch) IsValid() bool {
	for _, known := range Batches {
		if b == known {
			return true
		}
	}
	return false
}

// ApprovalStatus governs student visibility to recruiters
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// IsValid reports whether the status is one of the known values
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
