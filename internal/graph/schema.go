// Package graph defines the GraphQL schema and its resolvers. Resolvers read
// the caller identity from the request context (see WithUser) and delegate to
// the service layer; they hold no state of their own.
package graph

// Schema is the schema served at /graphql. Field and argument spellings are
// the API contract.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		myTaskLists: [TaskList!]!
		getTaskList(id: ID!): TaskList
	}

	type Mutation {
		signUp(input: SignUpInput): AuthUser!
		signIn(input: SignInInput): AuthUser!
		createTaskList(title: String!): TaskList!
		updateTaskList(id: ID!, title: String!): TaskList!
		deleteTaskList(id: ID!): Boolean!
		addUserToTaskList(taskListId: ID!, userId: ID!): TaskList
	}

	input SignUpInput {
		email: String!
		password: String!
		name: String!
		avatar: String
	}

	input SignInInput {
		email: String!
		password: String!
	}

	type AuthUser {
		user: User!
		token: String!
	}

	type User {
		id: ID!
		name: String!
		email: String!
		avatar: String
	}

	type TaskList {
		id: ID!
		createdAt: String!
		title: String!
		progress: Int!
		users: [User!]!
		todos: [Todo!]!
	}

	type Todo {
		id: ID!
		content: String!
		isComplete: Boolean!
		taskListId: ID!
		taskList: TaskList!
	}
`
