package model

// MaxActividades caps the rolling activity log.
const MaxActividades = 30

// Actividad is a human-readable audit entry, written as a side effect of
// every mutation.
type Actividad struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Detail    string `json:"detail"`
	CreatedAt string `json:"createdAt"`
}

// RegistrarActividad prepends an entry and drops the oldest beyond the cap.
func (d *Documento) RegistrarActividad(entrada Actividad) {
	d.Activities = append([]Actividad{entrada}, d.Activities...)
	if len(d.Activities) > MaxActividades {
		d.Activities = d.Activities[:MaxActividades]
	}
}
