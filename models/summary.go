package models

// MemoryInfo holds display-ready memory figures
type MemoryInfo struct {
	Total     string `json:"total"`
	Free      string `json:"free"`
	Available string `json:"available"`
	Used      string `json:"used"`
	SwapTotal string `json:"swapTotal"`
	SwapUsed  string `json:"swapUsed"`
}

// PackageCount is the installed package count for one manager
type PackageCount struct {
	Manager string `json:"manager"`
	Count   string `json:"count"`
}

// Summary is everything one probe run found out about the host
type Summary struct {
	Hostname    string         `json:"hostname"`
	Distro      string         `json:"distro"`
	Kernel      string         `json:"kernel"`
	Device      string         `json:"device"`
	CPU         string         `json:"cpu"`
	CPUCores    string         `json:"cpuCores"`
	Temp        string         `json:"temp"`
	GPU         string         `json:"gpu"`
	Environment string         `json:"environment"`
	Terminal    string         `json:"terminal"`
	Shell       string         `json:"shell"`
	Uptime      string         `json:"uptime"`
	Memory      MemoryInfo     `json:"memory"`
	Packages    []PackageCount `json:"packages,omitempty"`
}

// Field is one labelled line of text output
type Field struct {
	Label string
	Value string
}

// Fields flattens the summary into display order
func (s *Summary) Fields() []Field {
	fields := []Field{
		{"Host", s.Hostname},
		{"Distro", s.Distro},
		{"Kernel", s.Kernel},
		{"Device", s.Device},
		{"CPU", s.CPU},
		{"Cores", s.CPUCores},
		{"Temp", s.Temp},
		{"GPU", s.GPU},
		{"DE/WM", s.Environment},
		{"Terminal", s.Terminal},
		{"Shell", s.Shell},
		{"Uptime", s.Uptime},
		{"Memory", s.Memory.Used + " / " + s.Memory.Total},
		{"Available", s.Memory.Available},
		{"Swap", s.Memory.SwapUsed + " / " + s.Memory.SwapTotal},
	}
	for _, p := range s.Packages {
		fields = append(fields, Field{"Packages (" + p.Manager + ")", p.Count})
	}
	return fields
}
