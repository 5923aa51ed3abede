// Package seed holds the demo front-desk data loaded into empty stores.
package seed

import (
	"time"

	"go-medical-frontdesk/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func at(loc *time.Location, year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, loc)
}

func day(loc *time.Location, year int, month time.Month, d int) time.Time {
	return at(loc, year, month, d, 0, 0)
}

func dayPtr(loc *time.Location, year int, month time.Month, d int) *time.Time {
	t := day(loc, year, month, d)
	return &t
}

func str(s string) *string {
	return &s
}

func num(i int) *int {
	return &i
}

func weekdays(start, end string) entity.WeeklySchedule {
	schedule := make(entity.WeeklySchedule, 5)
	for _, d := range entity.Weekdays[:5] {
		schedule[d] = entity.WorkingHours{Start: start, End: end}
	}
	return schedule
}

func Doctors(loc *time.Location) []entity.Doctor {
	return []entity.Doctor{
		{
			ID: "1", Name: "Dr. Sarah Johnson", Email: "sarah.johnson@allohealth.com", Phone: "+1 (555) 123-4567",
			Specialization: "General Medicine", Experience: 8, Education: "MD - Harvard Medical School",
			Status: entity.DoctorStatusActive, Avatar: "/api/avatars/doctor-1.jpg", Schedule: weekdays("09:00", "17:00"),
			Rating: decimal.NewFromFloat(4.8), PatientsCount: 1247,
			CreatedAt: day(loc, 2020, time.March, 15), UpdatedAt: day(loc, 2024, time.January, 15),
		},
		{
			ID: "2", Name: "Dr. Michael Chen", Email: "michael.chen@allohealth.com", Phone: "+1 (555) 234-5678",
			Specialization: "Endocrinology", Experience: 12, Education: "MD - Stanford Medical School",
			Status: entity.DoctorStatusActive, Avatar: "/api/avatars/doctor-2.jpg", Schedule: weekdays("08:00", "16:00"),
			Rating: decimal.NewFromFloat(4.9), PatientsCount: 892,
			CreatedAt: day(loc, 2018, time.July, 22), UpdatedAt: day(loc, 2024, time.January, 10),
		},
		{
			ID: "3", Name: "Dr. Emily Rodriguez", Email: "emily.rodriguez@allohealth.com", Phone: "+1 (555) 345-6789",
			Specialization: "Cardiology", Experience: 15, Education: "MD - Johns Hopkins University",
			Status: entity.DoctorStatusActive, Avatar: "/api/avatars/doctor-3.jpg", Schedule: weekdays("07:00", "19:00"),
			Rating: decimal.NewFromFloat(4.7), PatientsCount: 1563,
			CreatedAt: day(loc, 2016, time.November, 8), UpdatedAt: day(loc, 2024, time.January, 12),
		},
		{
			ID: "4", Name: "Dr. David Kim", Email: "david.kim@allohealth.com", Phone: "+1 (555) 456-7890",
			Specialization: "Orthopedics", Experience: 10, Education: "MD - UCLA Medical School",
			Status: entity.DoctorStatusActive, Avatar: "/api/avatars/doctor-4.jpg", Schedule: weekdays("10:00", "18:00"),
			Rating: decimal.NewFromFloat(4.6), PatientsCount: 1034,
			CreatedAt: day(loc, 2019, time.January, 20), UpdatedAt: day(loc, 2024, time.January, 8),
		},
		{
			ID: "5", Name: "Dr. Amanda Lee", Email: "amanda.lee@allohealth.com", Phone: "+1 (555) 567-8901",
			Specialization: "Surgery", Experience: 18, Education: "MD - Yale Medical School",
			Status: entity.DoctorStatusActive, Avatar: "/api/avatars/doctor-5.jpg", Schedule: weekdays("06:00", "18:00"),
			Rating: decimal.NewFromFloat(4.9), PatientsCount: 2134,
			CreatedAt: day(loc, 2015, time.May, 12), UpdatedAt: day(loc, 2024, time.January, 14),
		},
		{
			ID: "6", Name: "Dr. Robert Taylor", Email: "robert.taylor@allohealth.com", Phone: "+1 (555) 678-9012",
			Specialization: "Pediatrics", Experience: 6, Education: "MD - University of Michigan",
			Status: entity.DoctorStatusActive, Avatar: "/api/avatars/doctor-6.jpg", Schedule: weekdays("08:30", "16:30"),
			Rating: decimal.NewFromFloat(4.8), PatientsCount: 756,
			CreatedAt: day(loc, 2021, time.September, 3), UpdatedAt: day(loc, 2024, time.January, 16),
		},
	}
}

func Patients(loc *time.Location) []entity.Patient {
	return []entity.Patient{
		{
			ID: "1", Name: "John Smith", Age: 35, Gender: "male", Phone: "+1 (555) 111-2222",
			Email: str("john.smith@email.com"), Address: "123 Main St, New York, NY 10001", BloodType: "O+", Status: "active",
			EmergencyContact: entity.EmergencyContact{Name: "Jane Smith", Relationship: "Spouse", Phone: "+1 (555) 111-3333"},
			MedicalHistory:   []string{"Hypertension (2020)", "Diabetes Type 2 (2021)", "Appendectomy (2018)"},
			Allergies:        []string{"Penicillin", "Shellfish"},
			Insurance:        "Blue Cross Blue Shield",
			LastVisit:        dayPtr(loc, 2024, time.January, 15), NextAppointment: dayPtr(loc, 2024, time.January, 25),
			CreatedAt: day(loc, 2020, time.June, 10), UpdatedAt: day(loc, 2024, time.January, 15),
		},
		{
			ID: "2", Name: "Maria Garcia", Age: 52, Gender: "female", Phone: "+1 (555) 222-3333",
			Email: str("maria.garcia@email.com"), Address: "456 Oak Ave, Los Angeles, CA 90210", BloodType: "A-", Status: "active",
			EmergencyContact: entity.EmergencyContact{Name: "Carlos Garcia", Relationship: "Husband", Phone: "+1 (555) 222-4444"},
			MedicalHistory:   []string{"Gestational Diabetes (2010)", "Hypothyroidism (2015)", "Cataract Surgery (2022)"},
			Allergies:        []string{"Sulfa drugs"},
			Insurance:        "Kaiser Permanente",
			LastVisit:        dayPtr(loc, 2024, time.January, 10), NextAppointment: dayPtr(loc, 2024, time.January, 30),
			CreatedAt: day(loc, 2018, time.March, 22), UpdatedAt: day(loc, 2024, time.January, 10),
		},
		{
			ID: "3", Name: "Robert Wilson", Age: 68, Gender: "male", Phone: "+1 (555) 333-4444",
			Email: str("robert.wilson@email.com"), Address: "789 Pine St, Chicago, IL 60601", BloodType: "B+", Status: "active",
			EmergencyContact: entity.EmergencyContact{Name: "Susan Wilson", Relationship: "Daughter", Phone: "+1 (555) 333-5555"},
			MedicalHistory:   []string{"Heart Attack (2020)", "Coronary Bypass (2020)", "High Cholesterol (2018)", "Prostate Cancer (2022)"},
			Allergies:        []string{"Aspirin", "Latex"},
			Insurance:        "Medicare + Aetna",
			LastVisit:        dayPtr(loc, 2024, time.January, 20), NextAppointment: dayPtr(loc, 2024, time.February, 5),
			CreatedAt: day(loc, 2016, time.November, 8), UpdatedAt: day(loc, 2024, time.January, 20),
		},
		{
			ID: "4", Name: "Lisa Thompson", Age: 28, Gender: "female", Phone: "+1 (555) 444-5555",
			Email: str("lisa.thompson@email.com"), Address: "321 Elm St, Miami, FL 33101", BloodType: "AB+", Status: "active",
			EmergencyContact: entity.EmergencyContact{Name: "Mike Thompson", Relationship: "Brother", Phone: "+1 (555) 444-6666"},
			MedicalHistory:   []string{"Tonsillectomy (2010)", "Broken Arm (2015)", "Pregnancy (2023)"},
			Allergies:        []string{"None known"},
			Insurance:        "UnitedHealth Group",
			LastVisit:        dayPtr(loc, 2024, time.January, 20),
			CreatedAt:        day(loc, 2021, time.July, 15), UpdatedAt: day(loc, 2024, time.January, 20),
		},
		{
			ID: "5", Name: "James Brown", Age: 45, Gender: "male", Phone: "+1 (555) 555-6666",
			Email: str("james.brown@email.com"), Address: "654 Maple Dr, Seattle, WA 98101", BloodType: "O-", Status: "active",
			EmergencyContact: entity.EmergencyContact{Name: "Sarah Brown", Relationship: "Wife", Phone: "+1 (555) 555-7777"},
			MedicalHistory:   []string{"Sports Injury - ACL (2019)", "Concussion (2021)", "Back Pain (2023)"},
			Allergies:        []string{"Ibuprofen"},
			Insurance:        "Premera Blue Cross",
			LastVisit:        dayPtr(loc, 2024, time.January, 16), NextAppointment: dayPtr(loc, 2024, time.January, 21),
			CreatedAt: day(loc, 2019, time.January, 20), UpdatedAt: day(loc, 2024, time.January, 16),
		},
		{
			ID: "6", Name: "Jennifer Davis", Age: 31, Gender: "female", Phone: "+1 (555) 666-7777",
			Email: str("jennifer.davis@email.com"), Address: "987 Cedar Ln, Austin, TX 73301", BloodType: "A+", Status: "active",
			EmergencyContact: entity.EmergencyContact{Name: "David Davis", Relationship: "Father", Phone: "+1 (555) 666-8888"},
			MedicalHistory:   []string{"Appendectomy (2024)", "Wisdom Teeth Removal (2018)", "Migraines (2020)"},
			Allergies:        []string{"Codeine"},
			Insurance:        "Cigna",
			LastVisit:        dayPtr(loc, 2024, time.January, 12), NextAppointment: dayPtr(loc, 2024, time.January, 21),
			CreatedAt: day(loc, 2020, time.September, 3), UpdatedAt: day(loc, 2024, time.January, 12),
		},
	}
}

func snapshotPatient(id, name string, age int, gender string) entity.AppointmentPatient {
	return entity.AppointmentPatient{ID: id, Name: name, Age: num(age), Gender: str(gender)}
}

func Appointments(loc *time.Location) []entity.Appointment {
	return []entity.Appointment{
		{
			ID: "1", Date: at(loc, 2024, time.January, 20, 9, 0), Duration: 30,
			Status: entity.AppointmentStatusScheduled, Type: entity.AppointmentTypeConsultation,
			Symptoms: str("Fever, headache, fatigue"), Notes: str("Patient reports feeling unwell for 3 days"),
			DoctorID: "1", PatientID: "1",
			Doctor:    entity.AppointmentDoctor{ID: "1", Name: "Dr. Sarah Johnson", Specialization: "General Medicine"},
			Patient:   snapshotPatient("1", "John Smith", 35, "male"),
			CreatedAt: at(loc, 2024, time.January, 15, 10, 0), UpdatedAt: at(loc, 2024, time.January, 15, 10, 0),
		},
		{
			ID: "2", Date: at(loc, 2024, time.January, 20, 10, 30), Duration: 45,
			Status: entity.AppointmentStatusConfirmed, Type: entity.AppointmentTypeFollowUp,
			Symptoms: str("Follow-up for diabetes management"), Notes: str("Regular check-up, blood sugar monitoring"),
			DoctorID: "2", PatientID: "2",
			Doctor:    entity.AppointmentDoctor{ID: "2", Name: "Dr. Michael Chen", Specialization: "Endocrinology"},
			Patient:   snapshotPatient("2", "Maria Garcia", 52, "female"),
			CreatedAt: at(loc, 2024, time.January, 14, 14, 0), UpdatedAt: at(loc, 2024, time.January, 16, 9, 0),
		},
		{
			ID: "3", Date: at(loc, 2024, time.January, 20, 11, 0), Duration: 60,
			Status: entity.AppointmentStatusInProgress, Type: entity.AppointmentTypeEmergency,
			Symptoms: str("Chest pain, shortness of breath"), Notes: str("Emergency consultation, ECG required"),
			DoctorID: "3", PatientID: "3",
			Doctor:    entity.AppointmentDoctor{ID: "3", Name: "Dr. Emily Rodriguez", Specialization: "Cardiology"},
			Patient:   snapshotPatient("3", "Robert Wilson", 68, "male"),
			CreatedAt: at(loc, 2024, time.January, 20, 10, 45), UpdatedAt: at(loc, 2024, time.January, 20, 10, 45),
		},
		{
			ID: "4", Date: at(loc, 2024, time.January, 20, 14, 0), Duration: 30,
			Status: entity.AppointmentStatusCompleted, Type: entity.AppointmentTypeRoutine,
			Symptoms: str("Annual physical examination"), Notes: str("All vitals normal, patient healthy"),
			DoctorID: "1", PatientID: "4",
			Doctor:    entity.AppointmentDoctor{ID: "1", Name: "Dr. Sarah Johnson", Specialization: "General Medicine"},
			Patient:   snapshotPatient("4", "Lisa Thompson", 28, "female"),
			CreatedAt: at(loc, 2024, time.January, 10, 16, 0), UpdatedAt: at(loc, 2024, time.January, 20, 14, 30),
		},
		{
			ID: "5", Date: at(loc, 2024, time.January, 21, 9, 0), Duration: 45,
			Status: entity.AppointmentStatusScheduled, Type: entity.AppointmentTypeConsultation,
			Symptoms: str("Back pain, difficulty walking"), Notes: str("Patient needs orthopedic consultation"),
			DoctorID: "4", PatientID: "5",
			Doctor:    entity.AppointmentDoctor{ID: "4", Name: "Dr. David Kim", Specialization: "Orthopedics"},
			Patient:   snapshotPatient("5", "James Brown", 45, "male"),
			CreatedAt: at(loc, 2024, time.January, 16, 11, 0), UpdatedAt: at(loc, 2024, time.January, 16, 11, 0),
		},
		{
			ID: "6", Date: at(loc, 2024, time.January, 21, 10, 0), Duration: 30,
			Status: entity.AppointmentStatusScheduled, Type: entity.AppointmentTypeFollowUp,
			Symptoms: str("Post-surgery recovery check"), Notes: str("Appendectomy follow-up, wound healing well"),
			DoctorID: "5", PatientID: "6",
			Doctor:    entity.AppointmentDoctor{ID: "5", Name: "Dr. Amanda Lee", Specialization: "Surgery"},
			Patient:   snapshotPatient("6", "Jennifer Davis", 31, "female"),
			CreatedAt: at(loc, 2024, time.January, 12, 15, 0), UpdatedAt: at(loc, 2024, time.January, 12, 15, 0),
		},
	}
}

// QueueItems returns the walk-in queue, stamped with now.
func QueueItems(now time.Time) []entity.QueueItem {
	item := func(id, patient, doctor string, priority entity.QueuePriority, status entity.QueueStatus, wait int, symptoms string) entity.QueueItem {
		return entity.QueueItem{
			ID: id, PatientName: patient, DoctorName: doctor, Priority: priority, Status: status,
			WaitTime: wait, Symptoms: symptoms, CreatedAt: now, UpdatedAt: now,
		}
	}
	return []entity.QueueItem{
		item("Q001", "Amit Patel", "Dr. Priya Sharma", entity.QueuePriorityHigh, entity.QueueStatusWaiting, 45, "Chest pain, shortness of breath"),
		item("Q002", "Priya Singh", "Dr. Rajesh Kumar", entity.QueuePriorityMedium, entity.QueueStatusConsulting, 15, "Fever, headache"),
		item("Q003", "Rajesh Verma", "Dr. Priya Sharma", entity.QueuePriorityLow, entity.QueueStatusWaiting, 30, "Regular checkup"),
		item("Q004", "Sunita Devi", "Dr. Rajesh Kumar", entity.QueuePriorityHigh, entity.QueueStatusWaiting, 60, "Severe abdominal pain"),
		item("Q005", "Vikram Malhotra", "Dr. Priya Sharma", entity.QueuePriorityMedium, entity.QueueStatusCompleted, 0, "Blood pressure check"),
		item("Q006", "Anjali Gupta", "Dr. Rajesh Kumar", entity.QueuePriorityLow, entity.QueueStatusWaiting, 20, "Follow-up consultation"),
		item("Q007", "Mohan Sharma", "Dr. Priya Sharma", entity.QueuePriorityHigh, entity.QueueStatusConsulting, 5, "Diabetes management"),
		item("Q008", "Kavita Joshi", "Dr. Rajesh Kumar", entity.QueuePriorityMedium, entity.QueueStatusWaiting, 35, "Skin rash"),
	}
}
