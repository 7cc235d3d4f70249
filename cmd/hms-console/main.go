// hms-console is the terminal dashboard over the hospital backend. It logs a
// demo user in, bulk-loads every collection into the in-memory mirror and
// serves read and write commands against it. When the backend is unreachable
// the console runs on the bundled demo dataset and reports every write as
// pending sync.
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/access"
	"github.com/hms/hms/internal/client/fixture"
	"github.com/hms/hms/internal/client/gateway"
	"github.com/hms/hms/internal/client/record"
	"github.com/hms/hms/internal/client/session"
	"github.com/hms/hms/internal/client/sync"
)

type console struct {
	log     zerolog.Logger
	sess    *session.Session
	coord   *sync.Coordinator
	gateway *gateway.Client
}

// connect logs the user in locally, then brings the mirror online. The local
// registry is the authority for the session role; the server token only
// matters for write calls.
func connect(ctx context.Context, server, username, password string, logger zerolog.Logger) (*console, error) {
	sess, err := session.Login(fixture.Users(), username, password)
	if err != nil {
		return nil, err
	}

	gw := gateway.New(server, logger)
	coord := sync.New(fixture.NewStore(), gw, logger)
	report := coord.Connect(ctx)
	if report.Connected {
		if res := gw.Login(ctx, username, password); !res.OK() {
			logger.Warn().Str("error", res.Err).Msg("server login failed, writes will stay local")
		}
	}

	return &console{log: logger, sess: sess, coord: coord, gateway: gw}, nil
}

func (c *console) require(cap access.Capability) error {
	if !c.sess.Has(cap) {
		return fmt.Errorf("role %q is not permitted to perform this action", c.sess.User.Role)
	}
	return nil
}

func reportSave(res sync.SaveResult) {
	fmt.Printf("#%d: %s\n", res.ID, res.Outcome)
	if res.Reason != "" {
		fmt.Printf("  reason: %s\n", res.Reason)
	}
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var server, username, password string

	rootCmd := &cobra.Command{
		Use:   "hms-console",
		Short: "Hospital administration console",
	}
	rootCmd.PersistentFlags().StringVar(&server, "server", "http://localhost:8000", "Backend base URL")
	rootCmd.PersistentFlags().StringVarP(&username, "user", "u", "admin", "Username")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "Password")

	open := func(cmd *cobra.Command) (*console, error) {
		return connect(cmd.Context(), server, username, password, logger)
	}

	rootCmd.AddCommand(dashboardCmd(open))
	rootCmd.AddCommand(listCmd(open))
	rootCmd.AddCommand(saveCmd(open))
	rootCmd.AddCommand(deleteCmd(open))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type opener func(cmd *cobra.Command) (*console, error)

func dashboardCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show hospital overview statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := open(cmd)
			if err != nil {
				return err
			}
			stats := c.coord.Store().Dashboard()

			fmt.Printf("Logged in as %s (%s)\n", c.sess.User.Name, c.sess.User.Role)
			if c.coord.Connected() {
				fmt.Println("Database: connected")
			} else {
				fmt.Println("Database: offline (local demo data)")
			}
			fmt.Println()
			fmt.Printf("Patients:      %d\n", stats.TotalPatients)
			fmt.Printf("Physicians:    %d\n", stats.TotalPhysicians)
			fmt.Printf("Appointments:  %d\n", stats.TotalAppointments)
			fmt.Printf("Rooms free:    %d\n", stats.AvailableRooms)
			fmt.Printf("Outstanding:   $%.2f (%d pending invoices)\n", stats.TotalOutstanding, stats.PendingInvoices)
			fmt.Printf("Collected:     $%.2f\n", stats.TotalPaid)
			fmt.Println()
			fmt.Println("Room occupancy:")
			for _, r := range stats.Rooms {
				fmt.Printf("  %-14s %d/%d (%.0f%%)\n", r.RoomType, r.Occupancy, r.Capacity, r.Percent)
			}
			return nil
		},
	}
}

func listCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:       "list <entity>",
		Short:     "List records of one entity",
		Args:      cobra.ExactArgs(1),
		ValidArgs: record.Entities,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := open(cmd)
			if err != nil {
				return err
			}
			st := c.coord.Store()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			defer w.Flush()

			switch args[0] {
			case record.EntityPatients:
				fmt.Fprintln(w, "ID\tNAME\tDOB\tGENDER\tADDRESS")
				for _, p := range st.Patients.List() {
					fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%s\n", p.PatientID, p.FirstName, p.LastName, p.DOB, p.Gender, p.Address)
				}
			case record.EntityPhysicians:
				fmt.Fprintln(w, "ID\tNAME\tSPECIALIZATION\tEMAIL")
				for _, p := range st.Physicians.List() {
					fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\n", p.PhysicianID, p.FirstName, p.LastName, p.Specialization, p.Email)
				}
			case record.EntityAppointments:
				fmt.Fprintln(w, "ID\tPATIENT\tPHYSICIAN\tDATE\tTIME\tSTATUS\tREASON")
				for _, a := range st.Appointments.List() {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", a.AppointmentID,
						st.PatientName(a.PatientID), st.PhysicianName(a.PhysicianID),
						a.Date, a.Time, a.Status, a.ReasonForVisit)
				}
			case record.EntityAdmissions:
				fmt.Fprintln(w, "ID\tPATIENT\tROOM\tDATE\tVERIFIED\tPLAN")
				for _, a := range st.Admissions.List() {
					fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%t\t%s\n", a.AdmissionID,
						st.PatientName(a.PatientID), a.RoomID, a.AdmissionDate, a.InsuranceVerified, a.TreatmentPlan)
				}
			case record.EntityRooms:
				fmt.Fprintln(w, "ID\tTYPE\tCAPACITY\tOCCUPANCY\tAVAILABLE")
				for _, r := range st.Rooms.List() {
					fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n", r.RoomID, r.RoomType, r.Capacity, r.Occupancy, r.RoomsAvailable)
				}
			case record.EntityBeds:
				fmt.Fprintln(w, "ID\tROOM\tBED\tOCCUPANT")
				for _, b := range st.Beds.List() {
					occupant := "-"
					if b.PatientID != nil {
						occupant = st.PatientName(*b.PatientID)
					}
					fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", b.BedID, b.RoomID, b.BedNumber, occupant)
				}
			case record.EntityBilling:
				fmt.Fprintln(w, "ID\tPATIENT\tAMOUNT\tINVOICED\tDUE\tSTATUS")
				for _, i := range st.Billing.List() {
					fmt.Fprintf(w, "%d\t%s\t$%.2f\t%s\t%s\t%s\n", i.BillingID,
						st.PatientName(i.PatientID), i.TotalAmount, i.InvoiceDate, i.DueDate, i.PaymentStatus)
				}
			case record.EntityInsurance:
				fmt.Fprintln(w, "ID\tPROVIDER\tCITY\tPHONE\tEMAIL")
				for _, i := range st.Insurance.List() {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i.InsuranceID, i.ProviderName, i.City, i.PhoneNumber, i.Email)
				}
			case record.EntityRecords:
				fmt.Fprintln(w, "ID\tPATIENT\tVISIT\tTREATMENT\tFOLLOW-UP")
				for _, r := range st.Records.List() {
					followUp := "-"
					if r.FollowUpDate != nil {
						followUp = *r.FollowUpDate
					}
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.RecordID,
						st.PatientName(r.PatientID), r.VisitDate, r.Treatment, followUp)
				}
			case record.EntityClaims:
				fmt.Fprintln(w, "ID\tPATIENT\tINSURER\tAMOUNT\tCLAIMED\tAPPROVED")
				for _, cl := range st.Claims.List() {
					approved := "pending"
					if cl.ApprovalDate != nil {
						approved = *cl.ApprovalDate
					}
					fmt.Fprintf(w, "%d\t%s\t%d\t$%.2f\t%s\t%s\n", cl.InsuranceClaimID,
						st.PatientName(cl.PatientID), cl.InsuranceID, cl.ClaimAmount, cl.ClaimDate, approved)
				}
			default:
				return fmt.Errorf("unknown entity %q", args[0])
			}
			return nil
		},
	}
}

func saveCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or update a record (pass --id to update)",
	}

	var patient record.Patient
	var insuranceID int
	patientCmd := &cobra.Command{
		Use:   "patient",
		Short: "Create or update a patient",
		RunE: func(c *cobra.Command, args []string) error {
			con, err := open(c)
			if err != nil {
				return err
			}
			if err := con.require(access.CanEditPatients); err != nil {
				return err
			}
			if insuranceID > 0 {
				patient.InsuranceID = &insuranceID
			}
			reportSave(con.coord.SavePatient(c.Context(), patient, patient.PatientID > 0))
			return nil
		},
	}
	patientCmd.Flags().IntVar(&patient.PatientID, "id", 0, "Patient id (0 creates)")
	patientCmd.Flags().StringVar(&patient.FirstName, "first", "", "First name")
	patientCmd.Flags().StringVar(&patient.LastName, "last", "", "Last name")
	patientCmd.Flags().StringVar(&patient.DOB, "dob", "", "Date of birth (YYYY-MM-DD)")
	patientCmd.Flags().StringVar(&patient.Address, "address", "", "Address")
	patientCmd.Flags().StringVar(&patient.Gender, "gender", "", "Gender")
	patientCmd.Flags().IntVar(&insuranceID, "insurance", 0, "Insurance provider id")
	cmd.AddCommand(patientCmd)

	var physician record.Physician
	physicianCmd := &cobra.Command{
		Use:   "physician",
		Short: "Create or update a physician",
		RunE: func(c *cobra.Command, args []string) error {
			con, err := open(c)
			if err != nil {
				return err
			}
			if err := con.require(access.CanEditPhysicians); err != nil {
				return err
			}
			reportSave(con.coord.SavePhysician(c.Context(), physician, physician.PhysicianID > 0))
			return nil
		},
	}
	physicianCmd.Flags().IntVar(&physician.PhysicianID, "id", 0, "Physician id (0 creates)")
	physicianCmd.Flags().StringVar(&physician.FirstName, "first", "", "First name")
	physicianCmd.Flags().StringVar(&physician.LastName, "last", "", "Last name")
	physicianCmd.Flags().StringVar(&physician.Specialization, "specialization", "", "Specialization")
	physicianCmd.Flags().StringVar(&physician.Email, "email", "", "Email")
	cmd.AddCommand(physicianCmd)

	var appt record.Appointment
	apptCmd := &cobra.Command{
		Use:   "appointment",
		Short: "Create or update an appointment",
		RunE: func(c *cobra.Command, args []string) error {
			con, err := open(c)
			if err != nil {
				return err
			}
			if err := con.require(access.CanEditAppointments); err != nil {
				return err
			}
			if appt.Status == "" {
				appt.Status = "Scheduled"
			}
			reportSave(con.coord.SaveAppointment(c.Context(), appt, appt.AppointmentID > 0))
			return nil
		},
	}
	apptCmd.Flags().IntVar(&appt.AppointmentID, "id", 0, "Appointment id (0 creates)")
	apptCmd.Flags().IntVar(&appt.PatientID, "patient", 0, "Patient id")
	apptCmd.Flags().IntVar(&appt.PhysicianID, "physician", 0, "Physician id")
	apptCmd.Flags().StringVar(&appt.Date, "date", "", "Date (YYYY-MM-DD)")
	apptCmd.Flags().StringVar(&appt.Time, "time", "", "Time (HH:MM)")
	apptCmd.Flags().StringVar(&appt.Status, "status", "", "Scheduled, Completed or Cancelled")
	apptCmd.Flags().StringVar(&appt.ReasonForVisit, "reason", "", "Reason for visit")
	cmd.AddCommand(apptCmd)

	return cmd
}

// deleteCaps maps each deletable entity to the capability that guards it.
// Beds are intentionally absent: they are read-only at every layer.
var deleteCaps = map[string]access.Capability{
	record.EntityPatients:     access.CanDeletePatients,
	record.EntityPhysicians:   access.CanEditPhysicians,
	record.EntityAppointments: access.CanEditAppointments,
	record.EntityAdmissions:   access.CanEditAdmissions,
	record.EntityRooms:        access.CanManageRooms,
	record.EntityBilling:      access.CanEditBilling,
	record.EntityInsurance:    access.CanEditBilling,
	record.EntityRecords:      access.CanEditRecords,
	record.EntityClaims:       access.CanEditBilling,
}

func deleteCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entity> <id>",
		Short: "Delete a record by id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity := args[0]
			var id int
			if _, err := fmt.Sscanf(args[1], "%d", &id); err != nil || id <= 0 {
				return fmt.Errorf("invalid id %q", args[1])
			}
			cap, ok := deleteCaps[entity]
			if !ok {
				return fmt.Errorf("entity %q cannot be deleted", entity)
			}

			c, err := open(cmd)
			if err != nil {
				return err
			}
			if err := c.require(cap); err != nil {
				return err
			}

			ctx := cmd.Context()
			var res sync.SaveResult
			switch entity {
			case record.EntityPatients:
				res = c.coord.DeletePatient(ctx, id)
			case record.EntityPhysicians:
				res = c.coord.DeletePhysician(ctx, id)
			case record.EntityAppointments:
				res = c.coord.DeleteAppointment(ctx, id)
			case record.EntityAdmissions:
				res = c.coord.DeleteAdmission(ctx, id)
			case record.EntityRooms:
				res = c.coord.DeleteRoom(ctx, id)
			case record.EntityBilling:
				res = c.coord.DeleteInvoice(ctx, id)
			case record.EntityInsurance:
				res = c.coord.DeleteInsurance(ctx, id)
			case record.EntityRecords:
				res = c.coord.DeleteRecord(ctx, id)
			case record.EntityClaims:
				res = c.coord.DeleteClaim(ctx, id)
			}
			reportSave(res)
			return nil
		},
	}
}
