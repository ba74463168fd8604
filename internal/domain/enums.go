package domain

type RequestorType string

const (
	RequestorTypeProducer         RequestorType = "Producer"
	RequestorTypeComplianceScheme RequestorType = "ComplianceScheme"
	RequestorTypeExporter         RequestorType = "Exporter"
	RequestorTypeReprocessor      RequestorType = "Reprocessor"
)

func (t RequestorType) IsValid() bool {
	switch t {
	case RequestorTypeProducer, RequestorTypeComplianceScheme, RequestorTypeExporter, RequestorTypeReprocessor:
		return true
	}
	return false
}

type ProducerType string

const (
	ProducerTypeLarge ProducerType = "LARGE"
	ProducerTypeSmall ProducerType = "SMALL"
)

func (t ProducerType) IsValid() bool {
	return t == ProducerTypeLarge || t == ProducerTypeSmall
}

type MaterialType string

const (
	MaterialPlastic   MaterialType = "Plastic"
	MaterialGlass     MaterialType = "Glass"
	MaterialAluminium MaterialType = "Aluminium"
	MaterialSteel     MaterialType = "Steel"
	MaterialPaper     MaterialType = "Paper"
	MaterialWood      MaterialType = "Wood"
)

func (m MaterialType) IsValid() bool {
	switch m {
	case MaterialPlastic, MaterialGlass, MaterialAluminium, MaterialSteel, MaterialPaper, MaterialWood:
		return true
	}
	return false
}

type TonnageBand string

const (
	TonnageBandUpto500         TonnageBand = "Upto500"
	TonnageBandOver500To5000   TonnageBand = "Over500To5000"
	TonnageBandOver5000To10000 TonnageBand = "Over5000To10000"
	TonnageBandOver10000       TonnageBand = "Over10000"
)

func (b TonnageBand) IsValid() bool {
	switch b {
	case TonnageBandUpto500, TonnageBandOver500To5000, TonnageBandOver5000To10000, TonnageBandOver10000:
		return true
	}
	return false
}
