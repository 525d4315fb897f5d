package pool

// group is a run of Data bound for a single broker, in input order.
type group struct {
	brokerID int32
	data     []*Data
}

// groupByBroker buckets data by destination broker id. Groups appear in
// first-occurrence order of their broker id and each keeps its members in
// the original relative order, so the concatenated groups cover the input
// exactly once and never reorder two units bound for the same broker.
func groupByBroker(data []*Data) []group {
	var groups []group
	index := make(map[int32]int, len(data))

	for _, d := range data {
		i, ok := index[d.Dest.BrokerID]
		if !ok {
			i = len(groups)
			index[d.Dest.BrokerID] = i
			groups = append(groups, group{brokerID: d.Dest.BrokerID})
		}
		groups[i].data = append(groups[i].data, d)
	}

	return groups
}
