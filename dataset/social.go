// SPDX-License-Identifier: MIT

package dataset

import "github.com/katalvlaran/scratchml/social"

// Users returns the ten members of the DataSciencester network.
func Users() []social.User {
	return []social.User{
		{ID: 0, Name: "Hero"}, {ID: 1, Name: "Dunn"}, {ID: 2, Name: "Sue"},
		{ID: 3, Name: "Chi"}, {ID: 4, Name: "Thor"}, {ID: 5, Name: "Clive"},
		{ID: 6, Name: "Hicks"}, {ID: 7, Name: "Devin"}, {ID: 8, Name: "Kate"},
		{ID: 9, Name: "Klein"},
	}
}

// FriendshipPairs returns the undirected friendships between Users.
func FriendshipPairs() []social.Friendship {
	return []social.Friendship{
		{A: 0, B: 1}, {A: 0, B: 2}, {A: 1, B: 2}, {A: 1, B: 3},
		{A: 2, B: 3}, {A: 3, B: 4}, {A: 4, B: 5}, {A: 5, B: 6},
		{A: 5, B: 7}, {A: 6, B: 8}, {A: 7, B: 8}, {A: 8, B: 9},
	}
}

// Network builds a social.Network from Users and FriendshipPairs.
func Network() *social.Network {
	n, err := social.NewNetwork(Users(), FriendshipPairs())
	if err != nil {
		panic("dataset: built-in network is invalid: " + err.Error())
	}
	return n
}

// Interests returns every (user, topic) pair.
func Interests() []social.Interest {
	raw := []struct {
		id    int
		topic string
	}{
		{0, "Hadoop"}, {0, "Big Data"}, {0, "HBase"}, {0, "Java"},
		{0, "Spark"}, {0, "Storm"}, {0, "Cassandra"},
		{1, "NoSQL"}, {1, "MongoDB"}, {1, "Cassandra"}, {1, "HBase"},
		{1, "Postgres"}, {2, "Python"}, {2, "scikit-learn"}, {2, "scipy"},
		{2, "numpy"}, {2, "statsmodels"}, {2, "pandas"}, {3, "R"}, {3, "Python"},
		{3, "statistics"}, {3, "regression"}, {3, "probability"},
		{4, "machine learning"}, {4, "regression"}, {4, "decision trees"},
		{4, "libsvm"}, {5, "Python"}, {5, "R"}, {5, "Java"}, {5, "C++"},
		{5, "Haskell"}, {5, "programming languages"}, {6, "statistics"},
		{6, "probability"}, {6, "mathematics"}, {6, "theory"},
		{7, "machine learning"}, {7, "scikit-learn"}, {7, "Mahout"},
		{7, "neural networks"}, {8, "neural networks"}, {8, "deep learning"},
		{8, "Big Data"}, {8, "artificial intelligence"}, {9, "Hadoop"},
		{9, "Java"}, {9, "MapReduce"}, {9, "Big Data"},
	}
	out := make([]social.Interest, len(raw))
	for i, r := range raw {
		out[i] = social.Interest{UserID: r.id, Topic: r.topic}
	}
	return out
}

// SalariesAndTenures returns (salary, years of experience) for the ten users.
func SalariesAndTenures() []social.SalaryTenure {
	return []social.SalaryTenure{
		{Salary: 83000, Tenure: 8.7}, {Salary: 88000, Tenure: 8.1},
		{Salary: 48000, Tenure: 0.7}, {Salary: 76000, Tenure: 6},
		{Salary: 69000, Tenure: 6.5}, {Salary: 76000, Tenure: 7.5},
		{Salary: 60000, Tenure: 2.5}, {Salary: 83000, Tenure: 10},
		{Salary: 48000, Tenure: 1.9}, {Salary: 63000, Tenure: 4.2},
	}
}
