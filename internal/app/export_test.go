package app

func (a *application) Addr() string {
	return a.listener.Addr().String()
}
