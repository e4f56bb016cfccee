package notification

// Delivery is the outcome of one best-effort send. Err is nil on success.
type Delivery struct {
	UserID         string
	NotificationID string
	Err            error
}

func (d Delivery) OK() bool {
	return d.Err == nil
}

type BroadcastReport struct {
	Role       string
	Targeted   int
	Deliveries []Delivery
}

func (r BroadcastReport) Failed() int {
	n := 0
	for _, d := range r.Deliveries {
		if d.Err != nil {
			n++
		}
	}
	return n
}

func (r BroadcastReport) Succeeded() int {
	return len(r.Deliveries) - r.Failed()
}
