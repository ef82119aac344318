package timezone

import "time"

// Fuso fixo da operação (horário de Brasília). Datas de agendamento são
// civis e não passam por aqui; isto serve só para carimbos de ciclo de vida
// e para resolver "hoje".
const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
